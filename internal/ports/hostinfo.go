package ports

// HostInspector reports facts about the machine the provisioner runs on.
// All methods are read-only snapshots; none mutate host state.
type HostInspector interface {
	// EffectiveUID returns the effective user ID of the current process.
	EffectiveUID() int

	// Architecture returns the machine hardware name (uname -m), e.g.
	// "aarch64" or "armv7l".
	Architecture() string

	// DeviceModel returns the board model string, if the platform
	// exposes one.
	DeviceModel() (string, error)

	// MemoryTotalMB returns the total physical memory in megabytes.
	MemoryTotalMB() (int64, error)

	// DiskFreeBytes returns the free disk space available to unprivileged
	// users on the filesystem holding path.
	DiskFreeBytes(path string) (uint64, error)
}

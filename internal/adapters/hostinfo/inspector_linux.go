//go:build linux

// Package hostinfo inspects the local machine for preflight checks.
package hostinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/piforge/claudeup/internal/ports"
)

const (
	meminfoPath     = "/proc/meminfo"
	deviceModelPath = "/proc/device-tree/model"
)

// Inspector reads host facts from the kernel interfaces a Raspberry Pi
// exposes (/proc plus statfs).
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// EffectiveUID returns the process's effective user ID.
func (i *Inspector) EffectiveUID() int {
	return os.Geteuid()
}

// Architecture returns the machine hardware name from uname.
func (i *Inspector) Architecture() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(uts.Machine[:])
}

// DeviceModel returns the board model from the device tree. Hosts without
// a device tree (generic PCs, containers) report an error.
func (i *Inspector) DeviceModel() (string, error) {
	data, err := os.ReadFile(deviceModelPath)
	if err != nil {
		return "", err
	}
	// The device-tree string is NUL terminated.
	model := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if model == "" {
		return "", fmt.Errorf("empty model string in %s", deviceModelPath)
	}
	return model, nil
}

// MemoryTotalMB parses MemTotal from /proc/meminfo.
func (i *Inspector) MemoryTotalMB() (int64, error) {
	data, err := os.ReadFile(meminfoPath)
	if err != nil {
		return 0, err
	}
	return parseMemTotalMB(string(data))
}

// DiskFreeBytes returns the free space available to unprivileged users on
// the filesystem holding path.
func (i *Inspector) DiskFreeBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}

// parseMemTotalMB extracts the MemTotal line, which meminfo reports in kB.
func parseMemTotalMB(meminfo string) (int64, error) {
	for _, line := range strings.Split(meminfo, "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed MemTotal line %q: %w", line, err)
		}
		return kb / 1024, nil
	}
	return 0, fmt.Errorf("no MemTotal entry in meminfo")
}

// Ensure Inspector implements ports.HostInspector.
var _ ports.HostInspector = (*Inspector)(nil)

package mocks

import "github.com/piforge/claudeup/internal/ports"

// HostInspector is a configurable test double for ports.HostInspector.
type HostInspector struct {
	UID       int
	Arch      string
	Model     string
	ModelErr  error
	MemoryMB  int64
	MemoryErr error
	DiskFree  uint64
	DiskErr   error
}

// NewHostInspector returns an inspector describing a healthy Raspberry Pi 4.
func NewHostInspector() *HostInspector {
	return &HostInspector{
		UID:      0,
		Arch:     "aarch64",
		Model:    "Raspberry Pi 4 Model B Rev 1.4",
		MemoryMB: 4096,
		DiskFree: 16 << 30,
	}
}

func (h *HostInspector) EffectiveUID() int { return h.UID }

func (h *HostInspector) Architecture() string { return h.Arch }

func (h *HostInspector) DeviceModel() (string, error) { return h.Model, h.ModelErr }

func (h *HostInspector) MemoryTotalMB() (int64, error) { return h.MemoryMB, h.MemoryErr }

func (h *HostInspector) DiskFreeBytes(string) (uint64, error) { return h.DiskFree, h.DiskErr }

var _ ports.HostInspector = (*HostInspector)(nil)

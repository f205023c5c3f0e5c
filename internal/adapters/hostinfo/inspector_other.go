//go:build !linux

// Package hostinfo inspects the local machine for preflight checks.
package hostinfo

import (
	"errors"
	"os"

	"github.com/piforge/claudeup/internal/ports"
)

var errUnsupported = errors.New("host inspection is only implemented for linux")

// Inspector is a stub on non-Linux platforms; the setup command refuses
// to run before any of these methods are reached.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// EffectiveUID returns the process's effective user ID.
func (i *Inspector) EffectiveUID() int {
	return os.Geteuid()
}

// Architecture reports an unknown machine name.
func (i *Inspector) Architecture() string {
	return "unknown"
}

// DeviceModel is unsupported.
func (i *Inspector) DeviceModel() (string, error) {
	return "", errUnsupported
}

// MemoryTotalMB is unsupported.
func (i *Inspector) MemoryTotalMB() (int64, error) {
	return 0, errUnsupported
}

// DiskFreeBytes is unsupported.
func (i *Inspector) DiskFreeBytes(string) (uint64, error) {
	return 0, errUnsupported
}

// Ensure Inspector implements ports.HostInspector.
var _ ports.HostInspector = (*Inspector)(nil)

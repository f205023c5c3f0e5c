package hostcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/piforge/claudeup/internal/ports"
)

// Thresholds for host resources.
const (
	// MinMemoryMB is the memory floor below which setup only warns.
	MinMemoryMB = 2048
	// MinDiskFreeBytes is the disk floor below which setup aborts.
	MinDiskFreeBytes = 4 << 30
)

// Checker gathers host facts and classifies each as ok, warning or fatal.
// It performs no mutations; the only side effect is a single ping probe.
type Checker struct {
	inspector ports.HostInspector
	runner    ports.CommandRunner
	probeHost string
}

// NewChecker creates a Checker.
func NewChecker(inspector ports.HostInspector, runner ports.CommandRunner, probeHost string) *Checker {
	return &Checker{
		inspector: inspector,
		runner:    runner,
		probeHost: probeHost,
	}
}

// Run executes every preflight check once and returns the report.
// Checks after a fatal finding still run so the user sees the full picture.
func (c *Checker) Run(ctx context.Context) Report {
	findings := []Finding{
		c.checkPrivilege(),
		c.checkArchitecture(),
		c.checkDeviceModel(),
		c.checkMemory(),
		c.checkDisk(),
		c.checkNetwork(ctx),
	}
	return NewReport(findings)
}

func (c *Checker) checkPrivilege() Finding {
	if c.inspector.EffectiveUID() != 0 {
		return Finding{
			Name:     "privilege",
			Severity: SeverityFatal,
			Detail:   "must be run as root; re-run with sudo",
		}
	}
	return Finding{Name: "privilege", Severity: SeverityOK, Detail: "running as root"}
}

func (c *Checker) checkArchitecture() Finding {
	arch := c.inspector.Architecture()
	switch arch {
	case "aarch64":
		return Finding{Name: "architecture", Severity: SeverityOK,
			Detail: fmt.Sprintf("%s (64-bit)", arch)}
	case "armv7l":
		return Finding{Name: "architecture", Severity: SeverityWarning,
			Detail: fmt.Sprintf("%s (32-bit): 64-bit OS recommended", arch)}
	default:
		return Finding{Name: "architecture", Severity: SeverityOK, Detail: arch}
	}
}

func (c *Checker) checkDeviceModel() Finding {
	model, err := c.inspector.DeviceModel()
	if err != nil || model == "" {
		return Finding{Name: "device", Severity: SeverityWarning,
			Detail: "could not detect board model"}
	}
	return Finding{Name: "device", Severity: SeverityOK, Detail: model}
}

func (c *Checker) checkMemory() Finding {
	totalMB, err := c.inspector.MemoryTotalMB()
	if err != nil {
		return Finding{Name: "memory", Severity: SeverityWarning,
			Detail: fmt.Sprintf("could not read memory size: %v", err)}
	}
	if totalMB < MinMemoryMB {
		return Finding{Name: "memory", Severity: SeverityWarning,
			Detail: fmt.Sprintf("%dMB total: below %dMB, may be tight", totalMB, MinMemoryMB)}
	}
	return Finding{Name: "memory", Severity: SeverityOK,
		Detail: fmt.Sprintf("%dMB total", totalMB)}
}

func (c *Checker) checkDisk() Finding {
	free, err := c.inspector.DiskFreeBytes("/")
	if err != nil {
		return Finding{Name: "disk", Severity: SeverityFatal,
			Detail: fmt.Sprintf("could not read free disk space: %v", err)}
	}
	freeGB := free >> 30
	if free < MinDiskFreeBytes {
		return Finding{Name: "disk", Severity: SeverityFatal,
			Detail: fmt.Sprintf("only %dGB free: need at least %dGB", freeGB, MinDiskFreeBytes>>30)}
	}
	return Finding{Name: "disk", Severity: SeverityOK,
		Detail: fmt.Sprintf("%dGB free", freeGB)}
}

// checkNetwork is a single best-effort probe. One packet, bounded wait,
// no retries: the tool assumes transient-free connectivity or aborts.
func (c *Checker) checkNetwork(ctx context.Context) Finding {
	result, err := c.runner.Run(ctx, "ping", "-c1", "-W3", c.probeHost)
	if err != nil || !result.Success() {
		detail := fmt.Sprintf("no route to %s", c.probeHost)
		if err != nil && !strings.Contains(err.Error(), "executable file not found") {
			detail = fmt.Sprintf("%s: %v", detail, err)
		}
		return Finding{Name: "network", Severity: SeverityFatal, Detail: detail}
	}
	return Finding{Name: "network", Severity: SeverityOK,
		Detail: fmt.Sprintf("%s reachable", c.probeHost)}
}

package hostcheck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piforge/claudeup/internal/domain/hostcheck"
	"github.com/piforge/claudeup/internal/testutil/mocks"
)

func findingByName(t *testing.T, report hostcheck.Report, name string) hostcheck.Finding {
	t.Helper()
	for _, f := range report.Findings() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no finding named %q", name)
	return hostcheck.Finding{}
}

func TestChecker_HealthyHost(t *testing.T) {
	t.Parallel()

	checker := hostcheck.NewChecker(mocks.NewHostInspector(), mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	_, fatal := report.Fatal()
	assert.False(t, fatal)
	assert.Empty(t, report.Warnings())
	assert.Len(t, report.Findings(), 6)
}

func TestChecker_NotRoot_Fatal(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.UID = 1000
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	fatal, ok := report.Fatal()
	require.True(t, ok)
	assert.Equal(t, "privilege", fatal.Name)
	assert.Contains(t, fatal.Detail, "sudo")
}

func TestChecker_32BitArch_Warns(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.Arch = "armv7l"
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	f := findingByName(t, report, "architecture")
	assert.Equal(t, hostcheck.SeverityWarning, f.Severity)
	_, fatal := report.Fatal()
	assert.False(t, fatal)
}

func TestChecker_UnknownModel_Warns(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.Model = ""
	inspector.ModelErr = errors.New("no device tree")
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	f := findingByName(t, report, "device")
	assert.Equal(t, hostcheck.SeverityWarning, f.Severity)
}

func TestChecker_LowMemory_WarnsOnly(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.MemoryMB = 1024
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	f := findingByName(t, report, "memory")
	assert.Equal(t, hostcheck.SeverityWarning, f.Severity)
	_, fatal := report.Fatal()
	assert.False(t, fatal, "low memory must not abort the run")
}

func TestChecker_LowDisk_Fatal(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.DiskFree = 2 << 30
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	fatal, ok := report.Fatal()
	require.True(t, ok)
	assert.Equal(t, "disk", fatal.Name)
}

func TestChecker_DiskAtThreshold_OK(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.DiskFree = hostcheck.MinDiskFreeBytes
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	f := findingByName(t, report, "disk")
	assert.Equal(t, hostcheck.SeverityOK, f.Severity)
}

func TestChecker_NoNetwork_Fatal(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddFailure("ping", []string{"-c1", "-W3", "google.com"}, 1, "100% packet loss")
	checker := hostcheck.NewChecker(mocks.NewHostInspector(), runner, "google.com")

	report := checker.Run(context.Background())

	fatal, ok := report.Fatal()
	require.True(t, ok)
	assert.Equal(t, "network", fatal.Name)
	assert.Contains(t, fatal.Detail, "google.com")
}

func TestChecker_PingsConfiguredHostOnce(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	checker := hostcheck.NewChecker(mocks.NewHostInspector(), runner, "example.org")

	checker.Run(context.Background())

	require.Len(t, runner.Calls(), 1)
	assert.True(t, runner.Invoked("ping", "-c1", "-W3", "example.org"))
}

func TestChecker_FatalDoesNotStopLaterChecks(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewHostInspector()
	inspector.UID = 1000
	inspector.DiskFree = 1 << 30
	checker := hostcheck.NewChecker(inspector, mocks.NewCommandRunner(), "google.com")

	report := checker.Run(context.Background())

	// All six findings present even though two are fatal.
	assert.Len(t, report.Findings(), 6)
	fatal, ok := report.Fatal()
	require.True(t, ok)
	assert.Equal(t, "privilege", fatal.Name, "Fatal() returns the first fatal finding")
}

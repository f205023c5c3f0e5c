//go:build linux

package hostinfo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemTotalMB(t *testing.T) {
	t.Parallel()

	meminfo := "MemTotal:        3885396 kB\nMemFree:          123456 kB\n"

	mb, err := parseMemTotalMB(meminfo)

	require.NoError(t, err)
	assert.Equal(t, int64(3794), mb)
}

func TestParseMemTotalMB_Missing(t *testing.T) {
	t.Parallel()

	_, err := parseMemTotalMB("MemFree: 123456 kB\n")

	require.Error(t, err)
}

func TestParseMemTotalMB_Malformed(t *testing.T) {
	t.Parallel()

	_, err := parseMemTotalMB("MemTotal: lots kB\n")

	require.Error(t, err)
}

func TestInspector_EffectiveUID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, os.Geteuid(), NewInspector().EffectiveUID())
}

func TestInspector_Architecture(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, NewInspector().Architecture())
}

func TestInspector_DiskFreeBytes(t *testing.T) {
	t.Parallel()

	free, err := NewInspector().DiskFreeBytes("/")

	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

func TestInspector_MemoryTotalMB(t *testing.T) {
	t.Parallel()

	mb, err := NewInspector().MemoryTotalMB()

	require.NoError(t, err)
	assert.Greater(t, mb, int64(0))
}

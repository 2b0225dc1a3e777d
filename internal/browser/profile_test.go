package browser

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProfilePriority(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("profile candidate paths under test are linux-specific")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Nil(t, ResolveProfile())

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "microsoft-edge"), 0o755))
	p := ResolveProfile()
	require.NotNil(t, p)
	assert.Equal(t, VendorEdge, p.Vendor)

	// Chrome outranks Edge when both exist.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "google-chrome"), 0o755))
	p = ResolveProfile()
	require.NotNil(t, p)
	assert.Equal(t, VendorChrome, p.Vendor)
	assert.Equal(t, filepath.Join(home, ".config", "google-chrome"), p.Dir)
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, dirExists(dir))
	assert.False(t, dirExists(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.False(t, dirExists(file))
}

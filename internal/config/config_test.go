package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tubes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 100, c.Width)
	assert.Equal(t, 100, c.Height)
	assert.Equal(t, SurfaceWindow, c.Surface)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "title: Pipes\nsurface: terminal\nframe_rate: 20\n")
	c, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Title = "Pipes"
	want.Surface = SurfaceTerminal
	want.FrameRate = 20
	assert.Equal(t, want, c)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "width: 0\n"},
		{"negative tps", "tps: -1\n"},
		{"unknown surface", "surface: vga\n"},
		{"bad background", "background: blue\n"},
		{"zero scale", "scale: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "width: [1, 2\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

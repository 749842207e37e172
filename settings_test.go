package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"imstyles/fonts"
	"imstyles/theme"
)

// isolate keeps a config file in the user's home from leaking into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolate(t)
	s, err := loadSettings(newViper(), "")
	require.NoError(t, err)
	require.Equal(t, theme.EmbraceTheDarkness.Name(), s.Theme)
	require.Equal(t, float64(fonts.DefaultSize), s.FontSize)
	require.Equal(t, 1100, s.Width)
	require.Equal(t, 700, s.Height)
	require.False(t, s.Debug)
	require.Empty(t, s.LogDir)
}

func TestLoadSettingsEnv(t *testing.T) {
	isolate(t)
	t.Setenv("IMSTYLES_THEME", "dracula")
	t.Setenv("IMSTYLES_FONT_SIZE", "20")
	t.Setenv("IMSTYLES_DEBUG", "true")

	s, err := loadSettings(newViper(), "")
	require.NoError(t, err)
	require.Equal(t, "dracula", s.Theme)
	require.Equal(t, float64(20), s.FontSize)
	require.True(t, s.Debug)
}

func TestLoadSettingsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: Dracula\nwidth: 640\nheight: 480\n"), 0644))

	s, err := loadSettings(newViper(), path)
	require.NoError(t, err)
	// stored under the canonical name so "list" can mark it
	require.Equal(t, "dracula", s.Theme)
	require.Equal(t, 640, s.Width)
	require.Equal(t, 480, s.Height)
}

func TestLoadSettingsCanonicalTheme(t *testing.T) {
	isolate(t)
	t.Setenv("IMSTYLES_THEME", "Embrace The Darkness")

	s, err := loadSettings(newViper(), "")
	require.NoError(t, err)
	require.Equal(t, theme.EmbraceTheDarkness.Name(), s.Theme)

	var buf bytes.Buffer
	require.NoError(t, writeThemeList(&buf, s.Theme))
	require.Contains(t, buf.String(), "* "+theme.EmbraceTheDarkness.Name())
}

func TestLoadSettingsSearchPath(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("imstyles.json", []byte(`{"font_size": 13}`), 0644))

	s, err := loadSettings(newViper(), "")
	require.NoError(t, err)
	require.Equal(t, float64(13), s.FontSize)
}

func TestLoadSettingsErrors(t *testing.T) {
	isolate(t)

	_, err := loadSettings(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("IMSTYLES_THEME", "solarized")
	_, err = loadSettings(newViper(), "")
	require.ErrorIs(t, err, theme.ErrUnknownTheme)

	t.Setenv("IMSTYLES_THEME", "")
	t.Setenv("IMSTYLES_FONT_SIZE", "-1")
	_, err = loadSettings(newViper(), "")
	require.ErrorIs(t, err, fonts.ErrInvalidSize)
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("IMSTYLES_WIDTH", "900")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", 0, "")
	flags.Float64("font-size", 0, "")
	require.NoError(t, flags.Parse([]string{"--width", "1280"}))

	v := newViper()
	require.NoError(t, bindFlags(v, flags, "width", "font_size", "log_dir"))
	s, err := loadSettings(v, "")
	require.NoError(t, err)
	require.Equal(t, 1280, s.Width)
	// unset flags leave the default alone
	require.Equal(t, float64(fonts.DefaultSize), s.FontSize)
}

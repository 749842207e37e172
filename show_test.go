package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"imstyles/style"
	"imstyles/theme"
)

func TestWriteThemeList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeThemeList(&buf, "dracula"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(theme.Names()))
	for _, line := range lines {
		if strings.Contains(line, "dracula") {
			require.True(t, strings.HasPrefix(line, "* "), line)
		} else {
			require.True(t, strings.HasPrefix(line, "  "), line)
		}
	}
	require.Contains(t, buf.String(), "Embrace The Darkness")
	require.Contains(t, buf.String(), "55 colors, 21 metrics")
}

func TestWriteTheme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTheme(&buf, theme.EmbraceTheDarkness, false))
	out := buf.String()
	require.Contains(t, out, "WindowBg")
	require.Contains(t, out, "#1a1a1a")
	require.Contains(t, out, "WindowRounding")
	require.Contains(t, out, "(8.00, 8.00)")
	require.NotContains(t, out, "(default)")
}

func TestWriteThemePartial(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTheme(&buf, theme.Dracula, false))
	require.NotContains(t, buf.String(), "PlotLines")

	buf.Reset()
	require.NoError(t, writeTheme(&buf, theme.Dracula, true))
	require.Contains(t, buf.String(), "PlotLines (default)")
}

func TestWriteFontInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFontInfo(&buf, 18))
	require.Contains(t, buf.String(), "Go Regular")
	require.Contains(t, buf.String(), "18px")
	require.Contains(t, buf.String(), "149 kB")

	require.Error(t, writeFontInfo(&buf, 0))
}

func TestThemeArg(t *testing.T) {
	settings = Settings{Theme: "dracula"}
	t.Cleanup(func() { settings = Settings{} })

	th, err := themeArg(nil)
	require.NoError(t, err)
	require.Same(t, theme.Dracula, th)

	th, err = themeArg([]string{"Embrace The Darkness"})
	require.NoError(t, err)
	require.Same(t, theme.EmbraceTheDarkness, th)

	_, err = themeArg([]string{"nope"})
	require.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestSwatchOpaqueMatchesHex(t *testing.T) {
	c := style.NewColor(1, 0, 0.5, 1)
	require.Contains(t, swatch(c), "    ")
	require.Equal(t, "#ff0080", c.Hex())
}

func TestWriteThemeAlignsStyledCells(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	var buf bytes.Buffer
	require.NoError(t, writeTheme(&buf, theme.Dracula, true))
	require.Contains(t, buf.String(), "\x1b[", "expected colored output")

	// every role row has its hex value at the same visible column
	cols := map[int]int{}
	for _, line := range strings.Split(stripansi.Strip(buf.String()), "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			cols[i]++
		}
	}
	require.Len(t, cols, 1, "hex column offsets: %v", cols)
	for _, n := range cols {
		require.Equal(t, int(style.RoleCount), n)
	}
}

func TestWriteThemeListAlignsStyledCells(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	var buf bytes.Buffer
	require.NoError(t, writeThemeList(&buf, "dracula"))

	cols := map[int]int{}
	for _, line := range strings.Split(stripansi.Strip(buf.String()), "\n") {
		if i := strings.Index(line, " colors, "); i >= 0 {
			cols[i]++
		}
	}
	require.Len(t, cols, 1, "count column offsets: %v", cols)
}

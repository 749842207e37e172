package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"imstyles/fonts"
	"imstyles/style"
	"imstyles/theme"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// plainTable is a borderless table. Column widths are measured on the
// visible text, so styled cells line up on color terminals too.
func plainTable(headers ...string) *table.Table {
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle.Copy().PaddingRight(2)
			}
			return cellStyle
		})
	if len(headers) > 0 {
		t.Headers(headers...)
	}
	return t
}

// writeThemeList prints one line per built-in theme, marking current.
func writeThemeList(w io.Writer, current string) error {
	tbl := plainTable()
	for _, t := range theme.All() {
		mark := " "
		if t.Name() == current {
			mark = "*"
		}
		tbl.Row(mark+" "+t.Name(), t.DisplayName(),
			fmt.Sprintf("%d colors, %d metrics", len(t.Colors()), len(t.Metrics())), dimStyle.Render(t.Credit()))
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// swatch renders a block in the opaque RGB of c. Alpha is printed next to
// it rather than shown.
func swatch(c style.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}

// writeTheme prints every override of t. Roles the theme leaves alone are
// listed with the toolkit default when all is set.
func writeTheme(w io.Writer, t *theme.Theme, all bool) error {
	fmt.Fprintln(w, headerStyle.Render(t.DisplayName()))
	fmt.Fprintf(w, "%s\n\n", dimStyle.Render(t.Credit()))

	colors := plainTable("ROLE", "", "HEX", "RGBA")
	def := style.Default()
	for _, role := range style.Roles() {
		c, ok := t.Color(role)
		name := role.String()
		if !ok {
			if !all {
				continue
			}
			c = def.Colors[role]
			name = dimStyle.Render(name + " (default)")
		}
		colors.Row(name, swatch(c), c.Hex(), fmt.Sprintf("%.2f %.2f %.2f %.2f", c.R(), c.G(), c.B(), c.A()))
	}
	if _, err := fmt.Fprintln(w, colors.Render()); err != nil {
		return err
	}

	metrics := plainTable("METRIC", "VALUE")
	for _, m := range t.Metrics() {
		metrics.Row(m.Metric.String(), m.Value.String())
	}
	_, err := fmt.Fprintf(w, "\n%s\n", metrics.Render())
	return err
}

// writeFontInfo describes the bundled font as it would be installed.
func writeFontInfo(w io.Writer, size float32) error {
	reg := fonts.NewFaceRegistry()
	if err := fonts.GoRegular.Install(reg, size); err != nil {
		return err
	}
	e, _ := reg.Default()
	md := e.Source.Metadata()
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("name:"), e.Asset.Name())
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("family:"), md.Family)
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("size:"), humanize.Bytes(uint64(len(e.Asset.Bytes()))))
	fmt.Fprintf(w, "%s %gpx\n", headerStyle.Render("pixel size:"), e.Size)
	return nil
}

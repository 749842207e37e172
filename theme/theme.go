// Package theme provides the built-in color and metric presets and applies
// them to a style object and, together with the bundled font, to a whole
// render context.
//
// Integration example:
//
//	ctx := render.NewContext(style.Default(), fonts.NewFaceRegistry())
//	if err := theme.EmbraceTheDarkness.PatchContext(ctx); err != nil {
//		return err
//	}
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imstyles/fonts"
	"imstyles/style"
)

// DefaultFontSize is the pixel size the built-in themes install the
// bundled font at.
const DefaultFontSize = fonts.DefaultSize

// ErrUnknownTheme is returned by Lookup for a name that is not built in.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is a named, partial set of color and metric overrides. Roles and
// metrics it does not list keep whatever value the target already had.
// Themes are compiled in and never modified.
type Theme struct {
	name     string
	credit   string
	fontSize float32
	colors   map[style.Role]style.Color
	metrics  map[style.Metric]style.MetricValue
}

// ColorEntry is one role override of a theme.
type ColorEntry struct {
	Role  style.Role
	Color style.Color
}

// MetricEntry is one metric override of a theme.
type MetricEntry struct {
	Metric style.Metric
	Value  style.MetricValue
}

var titleCaser = cases.Title(language.English)

func (t *Theme) Name() string { return t.name }

// DisplayName returns the name in title case with spaces, e.g.
// "Embrace The Darkness".
func (t *Theme) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(t.name, "-", " "))
}

// Credit names the author and origin of the palette.
func (t *Theme) Credit() string { return t.credit }

// FontSize is the pixel size PatchContext installs the font at.
func (t *Theme) FontSize() float32 { return t.fontSize }

// Color returns the override for role, if the theme has one.
func (t *Theme) Color(role style.Role) (style.Color, bool) {
	c, ok := t.colors[role]
	return c, ok
}

// Metric returns the override for m, if the theme has one.
func (t *Theme) Metric(m style.Metric) (style.MetricValue, bool) {
	v, ok := t.metrics[m]
	return v, ok
}

// Colors lists the color overrides in role order.
func (t *Theme) Colors() []ColorEntry {
	out := make([]ColorEntry, 0, len(t.colors))
	for r, c := range t.colors {
		out = append(out, ColorEntry{Role: r, Color: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out
}

// Metrics lists the metric overrides in metric order.
func (t *Theme) Metrics() []MetricEntry {
	out := make([]MetricEntry, 0, len(t.metrics))
	for m, v := range t.metrics {
		out = append(out, MetricEntry{Metric: m, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Metric < out[j].Metric })
	return out
}

func (t *Theme) String() string { return t.name }

var builtins = map[string]*Theme{
	EmbraceTheDarkness.name: EmbraceTheDarkness,
	Dracula.name:            Dracula,
}

// Default returns the theme used when none is chosen.
func Default() *Theme { return EmbraceTheDarkness }

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns the built-in themes sorted by name.
func All() []*Theme {
	out := make([]*Theme, 0, len(builtins))
	for _, n := range Names() {
		out = append(out, builtins[n])
	}
	return out
}

// Lookup finds a built-in theme. Matching ignores case and treats spaces
// and underscores like hyphens, so "Embrace_The_Darkness" works.
func Lookup(name string) (*Theme, error) {
	key := normalizeName(name)
	if t, ok := builtins[key]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}

func normalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(key)
}

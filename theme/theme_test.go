package theme

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"imstyles/fonts"
	"imstyles/style"
)

var sentinel = style.NewColor(0.123, 0.456, 0.789, 0.5)

// sentinelStyle returns a style whose every role and metric holds a value
// no theme uses.
func sentinelStyle(t *testing.T) *style.Style {
	t.Helper()
	s := &style.Style{Alpha: 0.77, MouseCursorScale: 3}
	for _, r := range style.Roles() {
		s.Colors[r] = sentinel
	}
	for m := style.Metric(0); m < style.MetricCount; m++ {
		v := style.Scalar(-42)
		if m.Kind() == style.KindVector {
			v = style.Vector(-42, -43)
		}
		require.NoError(t, s.SetMetric(m, v))
	}
	return s
}

func TestCompletenessLiterals(t *testing.T) {
	tests := []struct {
		theme *Theme
		role  style.Role
		want  style.Color
	}{
		{EmbraceTheDarkness, style.RoleWindowBg, style.NewColor(0.10, 0.10, 0.10, 1.00)},
		{EmbraceTheDarkness, style.RoleText, style.NewColor(1, 1, 1, 1)},
		{EmbraceTheDarkness, style.RoleModalWindowDimBg, style.NewColor(1.00, 0.00, 0.00, 0.35)},
		{Dracula, style.RoleWindowBg, style.NewColor(0.10, 0.10, 0.13, 1.00)},
		{Dracula, style.RoleCheckMark, style.NewColor(0.74, 0.58, 0.98, 1.00)},
		{Dracula, style.RoleSeparatorActive, style.NewColor(0.84, 0.58, 1.00, 1.00)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.theme.Name(), tt.role), func(t *testing.T) {
			var s style.Style
			require.NoError(t, tt.theme.Patch(&s))
			require.Equal(t, tt.want, s.Colors[tt.role])
		})
	}
}

func TestPatchWritesEveryTableEntry(t *testing.T) {
	for _, th := range All() {
		t.Run(th.Name(), func(t *testing.T) {
			s := sentinelStyle(t)
			require.NoError(t, th.Patch(s))
			for _, e := range th.Colors() {
				if s.Colors[e.Role] != e.Color {
					t.Errorf("%v = %v, want %v", e.Role, s.Colors[e.Role], e.Color)
				}
			}
			for _, e := range th.Metrics() {
				got, err := s.Metric(e.Metric)
				require.NoError(t, err)
				if got != e.Value {
					t.Errorf("%v = %v, want %v", e.Metric, got, e.Value)
				}
			}
		})
	}
}

func TestEmbraceTheDarknessCoversSchema(t *testing.T) {
	require.Len(t, EmbraceTheDarkness.Colors(), int(style.RoleCount))
	require.Len(t, EmbraceTheDarkness.Metrics(), int(style.MetricCount))

	s := EmbraceTheDarkness.MustNewStyle()
	require.Equal(t, float32(7), s.WindowRounding)
	require.Equal(t, float32(3), s.FrameRounding)
	require.Equal(t, style.Vec2{X: 5, Y: 2}, s.FramePadding)
	require.Equal(t, style.Vec2{X: 6, Y: 6}, s.ItemSpacing)
	require.Equal(t, float32(25), s.IndentSpacing)
}

func TestPartiality(t *testing.T) {
	s := sentinelStyle(t)
	before := *s
	require.NoError(t, Dracula.Patch(s))

	for _, r := range style.Roles() {
		if _, ok := Dracula.Color(r); ok {
			continue
		}
		if s.Colors[r] != sentinel {
			t.Errorf("untouched role %v changed to %v", r, s.Colors[r])
		}
	}
	for m := style.Metric(0); m < style.MetricCount; m++ {
		if _, ok := Dracula.Metric(m); ok {
			continue
		}
		got, _ := s.Metric(m)
		want, _ := before.Metric(m)
		if got != want {
			t.Errorf("untouched metric %v changed from %v to %v", m, want, got)
		}
	}
	require.Equal(t, before.Alpha, s.Alpha)
	require.Equal(t, before.MouseCursorScale, s.MouseCursorScale)
	require.Equal(t, sentinel, s.Colors[style.RolePlotLines])
	require.Equal(t, style.Vec2{X: -42, Y: -43}, s.WindowPadding)
}

func TestIdempotence(t *testing.T) {
	for _, th := range All() {
		once := sentinelStyle(t)
		twice := sentinelStyle(t)
		require.NoError(t, th.Patch(once))
		require.NoError(t, th.Patch(twice))
		require.NoError(t, th.Patch(twice))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("%s: applying twice differs from applying once", th.Name())
		}
	}
}

func TestApplyOrderDoesNotLeak(t *testing.T) {
	// result depends only on the initial state and the last theme's table
	// for the roles it lists
	a := style.Default()
	require.NoError(t, Dracula.Patch(a))
	require.NoError(t, EmbraceTheDarkness.Patch(a))

	b := style.Default()
	require.NoError(t, EmbraceTheDarkness.Patch(b))
	require.Equal(t, b, a, "darkness lists every field, so history must not matter")
}

func TestNewStyleDeterministic(t *testing.T) {
	for _, th := range All() {
		a, err := th.NewStyle()
		require.NoError(t, err)
		b, err := th.NewStyle()
		require.NoError(t, err)
		require.NotSame(t, a, b)
		require.Equal(t, a, b)
	}
}

func TestNewStyleStartsFromDefaults(t *testing.T) {
	s, err := Dracula.NewStyle()
	require.NoError(t, err)
	def := style.Default()
	// not listed by dracula, so the toolkit default survives
	require.Equal(t, def.Colors[style.RolePlotHistogram], s.Colors[style.RolePlotHistogram])
	require.Equal(t, def.WindowPadding, s.WindowPadding)
	require.Equal(t, def.Alpha, s.Alpha)
	require.Equal(t, float32(7), s.WindowRounding)
}

func TestNewStyleFromInjectedConstructor(t *testing.T) {
	calls := 0
	newDefault := func() *style.Style {
		calls++
		return &style.Style{Alpha: 0.5}
	}
	s, err := Dracula.NewStyleFrom(newDefault)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, float32(0.5), s.Alpha)
	require.Equal(t, style.Color{}, s.Colors[style.RolePlotLines])

	_, err = Dracula.NewStyleFrom(func() *style.Style { return nil })
	require.Error(t, err)
}

// legacyStyle only knows the roles that existed before docking support.
type legacyStyle struct {
	style.Style
}

func (l *legacyStyle) SetColor(role style.Role, c style.Color) error {
	if role >= style.RoleDockingPreview {
		return fmt.Errorf("%w: %v", style.ErrConfigMismatch, role)
	}
	return l.Style.SetColor(role, c)
}

func TestPatchConfigMismatch(t *testing.T) {
	for _, th := range All() {
		err := th.Patch(&legacyStyle{})
		if !errors.Is(err, style.ErrConfigMismatch) {
			t.Errorf("%s: Patch err = %v, want ErrConfigMismatch", th.Name(), err)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want *Theme
	}{
		{"embrace-the-darkness", EmbraceTheDarkness},
		{"Embrace_The_Darkness", EmbraceTheDarkness},
		{" embrace the darkness ", EmbraceTheDarkness},
		{"dracula", Dracula},
		{"DRACULA", Dracula},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		require.Same(t, tt.want, got, tt.name)
	}

	_, err := Lookup("solarized")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestNamesAndDefaults(t *testing.T) {
	require.Equal(t, []string{"dracula", "embrace-the-darkness"}, Names())
	require.Same(t, EmbraceTheDarkness, Default())
	require.Equal(t, "Embrace The Darkness", EmbraceTheDarkness.DisplayName())
	require.Equal(t, "Dracula", Dracula.DisplayName())
	for _, th := range All() {
		require.Equal(t, fonts.DefaultSize, th.FontSize())
		require.NotEmpty(t, th.Credit())
	}
}

type fakeFonts struct {
	fonts []string
	size  float32
}

func (f *fakeFonts) PatchFont(a fonts.Asset, size float32) error {
	f.fonts = []string{a.Name()}
	f.size = size
	return nil
}

type fakeContext struct {
	style *style.Style
	fonts *fakeFonts
}

func (c *fakeContext) Style() StyleTarget  { return c.style }
func (c *fakeContext) Fonts() fonts.Target { return c.fonts }

func TestPatchContext(t *testing.T) {
	ctx := &fakeContext{
		style: &style.Style{},
		fonts: &fakeFonts{fonts: []string{"a", "b"}},
	}
	require.NoError(t, EmbraceTheDarkness.PatchContext(ctx))
	require.Equal(t, []string{fonts.GoRegular.Name()}, ctx.fonts.fonts)
	require.Equal(t, float32(16), ctx.fonts.size)
	require.Equal(t, style.NewColor(0.10, 0.10, 0.10, 1), ctx.style.Colors[style.RoleWindowBg])

	require.NoError(t, Dracula.PatchContextWith(ctx, fonts.GoRegular, 22))
	require.Equal(t, float32(22), ctx.fonts.size)

	err := Dracula.PatchContextWith(ctx, fonts.GoRegular, 0)
	require.ErrorIs(t, err, fonts.ErrInvalidSize)
}

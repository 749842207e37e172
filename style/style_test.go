package style

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDoesNotShareState(t *testing.T) {
	a := Default()
	b := Default()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Default() not deterministic")
	}
	a.Colors[RoleText] = NewColor(0, 0, 0, 0)
	a.WindowRounding = 99
	if b.Colors[RoleText] != defaultColors[RoleText] || b.WindowRounding != 0 {
		t.Errorf("mutating one default style changed another")
	}
	if Default().Colors[RoleText] != defaultColors[RoleText] {
		t.Errorf("mutating a default style changed the stock palette")
	}
}

func TestSetColor(t *testing.T) {
	var s Style
	require.NoError(t, s.SetColor(RoleWindowBg, NewColor(0.1, 0.2, 0.3, 0.4)))
	require.Equal(t, Color{0.1, 0.2, 0.3, 0.4}, s.Colors[RoleWindowBg])

	// out of range channels are stored as given
	require.NoError(t, s.SetColor(RoleText, NewColor(2, -1, 0.5, 1)))
	got, err := s.Color(RoleText)
	require.NoError(t, err)
	require.Equal(t, Color{2, -1, 0.5, 1}, got)
}

func TestSetColorUnknownRole(t *testing.T) {
	var s Style
	for _, r := range []Role{-1, RoleCount, RoleCount + 10} {
		err := s.SetColor(r, NewColor(1, 1, 1, 1))
		if !errors.Is(err, ErrConfigMismatch) {
			t.Errorf("SetColor(%v) err = %v, want ErrConfigMismatch", r, err)
		}
	}
	if s != (Style{}) {
		t.Errorf("failed SetColor modified the style")
	}
}

func TestSetMetric(t *testing.T) {
	s := Default()
	require.NoError(t, s.SetMetric(MetricItemSpacing, Vector(6, 7)))
	require.Equal(t, Vec2{6, 7}, s.ItemSpacing)

	require.NoError(t, s.SetMetric(MetricWindowRounding, Scalar(7)))
	require.Equal(t, float32(7), s.WindowRounding)

	v, err := s.Metric(MetricWindowRounding)
	require.NoError(t, err)
	require.Equal(t, Scalar(7), v)
}

func TestEveryMetricHasAField(t *testing.T) {
	var s Style
	for m := Metric(0); m < MetricCount; m++ {
		var v MetricValue
		if m.Kind() == KindVector {
			v = Vector(float32(m)+1, float32(m)+2)
		} else {
			v = Scalar(float32(m) + 1)
		}
		if err := s.SetMetric(m, v); err != nil {
			t.Fatalf("SetMetric(%v): %v", m, err)
		}
		got, err := s.Metric(m)
		if err != nil {
			t.Fatalf("Metric(%v): %v", m, err)
		}
		if got != v {
			t.Errorf("Metric(%v) = %v, want %v", m, got, v)
		}
	}
}

func TestSetMetricMismatch(t *testing.T) {
	s := Default()
	before := *s
	tests := []struct {
		name string
		m    Metric
		v    MetricValue
	}{
		{"scalar into vector", MetricWindowPadding, Scalar(3)},
		{"vector into scalar", MetricTabRounding, Vector(1, 2)},
		{"unknown metric", MetricCount, Scalar(1)},
		{"negative metric", -1, Scalar(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetMetric(tt.m, tt.v)
			require.ErrorIs(t, err, ErrConfigMismatch)
		})
	}
	require.Equal(t, before, *s)
}

func TestRoleNames(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Roles() {
		name := r.String()
		if name == "" {
			t.Fatalf("role %d has no name", int(r))
		}
		if seen[name] {
			t.Fatalf("duplicate role name %q", name)
		}
		seen[name] = true
		got, ok := ParseRole(name)
		if !ok || got != r {
			t.Errorf("ParseRole(%q) = %v, %v", name, got, ok)
		}
	}
	if len(seen) != int(RoleCount) {
		t.Errorf("got %d names, want %d", len(seen), RoleCount)
	}
	if r, ok := ParseRole("windowbg"); !ok || r != RoleWindowBg {
		t.Errorf("ParseRole is case sensitive")
	}
	if _, ok := ParseRole("nope"); ok {
		t.Errorf("ParseRole accepted an unknown name")
	}
	if got := RoleCount.String(); got != "Role(55)" {
		t.Errorf("RoleCount.String() = %q", got)
	}
}

func TestColorConversion(t *testing.T) {
	c := NewColor(1, 0, 0.5, 2)
	require.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, c.ToNRGBA())
	require.Equal(t, "#ff0080", c.Hex())
	require.Equal(t, color.NRGBA{}, NewColor(-1, -0.5, 0, 0).ToNRGBA())
	require.Equal(t, Color{1, 0, 0.5, 2}, c, "conversion must not modify the color")
}

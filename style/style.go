// Package style holds the style object of the immediate-mode toolkit:
// every color role and layout metric the renderer reads each frame.
package style

import (
	"errors"
	"fmt"
)

// ErrConfigMismatch is returned when a role or metric is not part of the
// style schema, or a metric value has the wrong shape.
var ErrConfigMismatch = errors.New("style: config mismatch")

// Style controls colors, spacing and rounding for every widget.
type Style struct {
	Alpha         float32
	DisabledAlpha float32

	WindowPadding    Vec2
	WindowRounding   float32
	WindowBorderSize float32
	WindowMinSize    Vec2
	WindowTitleAlign Vec2

	ChildRounding   float32
	ChildBorderSize float32
	PopupRounding   float32
	PopupBorderSize float32

	FramePadding    Vec2
	FrameRounding   float32
	FrameBorderSize float32

	ItemSpacing       Vec2
	ItemInnerSpacing  Vec2
	CellPadding       Vec2
	TouchExtraPadding Vec2
	IndentSpacing     float32
	ColumnsMinSpacing float32

	ScrollbarSize     float32
	ScrollbarRounding float32
	GrabMinSize       float32
	GrabRounding      float32
	LogSliderDeadzone float32

	TabRounding   float32
	TabBorderSize float32

	ButtonTextAlign        Vec2
	SelectableTextAlign    Vec2
	DisplayWindowPadding   Vec2
	DisplaySafeAreaPadding Vec2
	MouseCursorScale       float32

	AntiAliasedLines           bool
	AntiAliasedLinesUseTex     bool
	AntiAliasedFill            bool
	CurveTessellationTol       float32
	CircleTessellationMaxError float32

	Colors [RoleCount]Color
}

// Default returns the toolkit's canonical style: stock metrics and the
// stock dark palette. Every field has an explicit value.
func Default() *Style {
	s := &Style{
		Alpha:         1,
		DisabledAlpha: 0.60,

		WindowPadding:    Vec2{8, 8},
		WindowRounding:   0,
		WindowBorderSize: 1,
		WindowMinSize:    Vec2{32, 32},
		WindowTitleAlign: Vec2{0, 0.5},

		ChildRounding:   0,
		ChildBorderSize: 1,
		PopupRounding:   0,
		PopupBorderSize: 1,

		FramePadding:    Vec2{4, 3},
		FrameRounding:   0,
		FrameBorderSize: 0,

		ItemSpacing:       Vec2{8, 4},
		ItemInnerSpacing:  Vec2{4, 4},
		CellPadding:       Vec2{4, 2},
		TouchExtraPadding: Vec2{0, 0},
		IndentSpacing:     21,
		ColumnsMinSpacing: 6,

		ScrollbarSize:     14,
		ScrollbarRounding: 9,
		GrabMinSize:       12,
		GrabRounding:      0,
		LogSliderDeadzone: 4,

		TabRounding:   4,
		TabBorderSize: 0,

		ButtonTextAlign:        Vec2{0.5, 0.5},
		SelectableTextAlign:    Vec2{0, 0},
		DisplayWindowPadding:   Vec2{19, 19},
		DisplaySafeAreaPadding: Vec2{3, 3},
		MouseCursorScale:       1,

		AntiAliasedLines:           true,
		AntiAliasedLinesUseTex:     true,
		AntiAliasedFill:            true,
		CurveTessellationTol:       1.25,
		CircleTessellationMaxError: 0.30,
	}
	s.Colors = defaultColors
	return s
}

// Clone returns an independent copy of the style.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// Color returns the color stored for role.
func (s *Style) Color(role Role) (Color, error) {
	if !role.Valid() {
		return Color{}, fmt.Errorf("%w: unknown color role %v", ErrConfigMismatch, role)
	}
	return s.Colors[role], nil
}

// SetColor overwrites the color for role.
func (s *Style) SetColor(role Role, c Color) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown color role %v", ErrConfigMismatch, role)
	}
	s.Colors[role] = c
	return nil
}

// SetMetric overwrites the field backing m. The value's kind must match
// the metric's kind.
func (s *Style) SetMetric(m Metric, v MetricValue) error {
	if !m.Valid() {
		return fmt.Errorf("%w: unknown metric %v", ErrConfigMismatch, m)
	}
	if v.Kind() != m.Kind() {
		return fmt.Errorf("%w: %v wants a %v value, got %v", ErrConfigMismatch, m, m.Kind(), v.Kind())
	}
	if p := s.vectorField(m); p != nil {
		*p = v.Vec()
		return nil
	}
	if p := s.scalarField(m); p != nil {
		*p = v.Float()
		return nil
	}
	return fmt.Errorf("%w: metric %v has no backing field", ErrConfigMismatch, m)
}

// Metric reads the current value of m.
func (s *Style) Metric(m Metric) (MetricValue, error) {
	if p := s.vectorField(m); p != nil {
		return Vector(p.X, p.Y), nil
	}
	if p := s.scalarField(m); p != nil {
		return Scalar(*p), nil
	}
	return MetricValue{}, fmt.Errorf("%w: unknown metric %v", ErrConfigMismatch, m)
}

func (s *Style) vectorField(m Metric) *Vec2 {
	switch m {
	case MetricWindowPadding:
		return &s.WindowPadding
	case MetricFramePadding:
		return &s.FramePadding
	case MetricItemSpacing:
		return &s.ItemSpacing
	case MetricItemInnerSpacing:
		return &s.ItemInnerSpacing
	case MetricTouchExtraPadding:
		return &s.TouchExtraPadding
	}
	return nil
}

func (s *Style) scalarField(m Metric) *float32 {
	switch m {
	case MetricIndentSpacing:
		return &s.IndentSpacing
	case MetricScrollbarSize:
		return &s.ScrollbarSize
	case MetricGrabMinSize:
		return &s.GrabMinSize
	case MetricWindowBorderSize:
		return &s.WindowBorderSize
	case MetricChildBorderSize:
		return &s.ChildBorderSize
	case MetricPopupBorderSize:
		return &s.PopupBorderSize
	case MetricFrameBorderSize:
		return &s.FrameBorderSize
	case MetricTabBorderSize:
		return &s.TabBorderSize
	case MetricWindowRounding:
		return &s.WindowRounding
	case MetricChildRounding:
		return &s.ChildRounding
	case MetricFrameRounding:
		return &s.FrameRounding
	case MetricPopupRounding:
		return &s.PopupRounding
	case MetricScrollbarRounding:
		return &s.ScrollbarRounding
	case MetricGrabRounding:
		return &s.GrabRounding
	case MetricLogSliderDeadzone:
		return &s.LogSliderDeadzone
	case MetricTabRounding:
		return &s.TabRounding
	}
	return nil
}

package style

import (
	"fmt"
	"strconv"
)

// Metric identifies a non-color style field that a theme may override.
type Metric int

const (
	MetricWindowPadding Metric = iota
	MetricFramePadding
	MetricItemSpacing
	MetricItemInnerSpacing
	MetricTouchExtraPadding
	MetricIndentSpacing
	MetricScrollbarSize
	MetricGrabMinSize
	MetricWindowBorderSize
	MetricChildBorderSize
	MetricPopupBorderSize
	MetricFrameBorderSize
	MetricTabBorderSize
	MetricWindowRounding
	MetricChildRounding
	MetricFrameRounding
	MetricPopupRounding
	MetricScrollbarRounding
	MetricGrabRounding
	MetricLogSliderDeadzone
	MetricTabRounding

	// MetricCount is the number of metrics.
	MetricCount
)

// MetricKind tells whether a metric holds a scalar or a Vec2.
type MetricKind int

const (
	KindScalar MetricKind = iota
	KindVector
)

func (k MetricKind) String() string {
	if k == KindVector {
		return "vector"
	}
	return "scalar"
}

var metricInfo = [MetricCount]struct {
	name string
	kind MetricKind
}{
	MetricWindowPadding:     {"WindowPadding", KindVector},
	MetricFramePadding:      {"FramePadding", KindVector},
	MetricItemSpacing:       {"ItemSpacing", KindVector},
	MetricItemInnerSpacing:  {"ItemInnerSpacing", KindVector},
	MetricTouchExtraPadding: {"TouchExtraPadding", KindVector},
	MetricIndentSpacing:     {"IndentSpacing", KindScalar},
	MetricScrollbarSize:     {"ScrollbarSize", KindScalar},
	MetricGrabMinSize:       {"GrabMinSize", KindScalar},
	MetricWindowBorderSize:  {"WindowBorderSize", KindScalar},
	MetricChildBorderSize:   {"ChildBorderSize", KindScalar},
	MetricPopupBorderSize:   {"PopupBorderSize", KindScalar},
	MetricFrameBorderSize:   {"FrameBorderSize", KindScalar},
	MetricTabBorderSize:     {"TabBorderSize", KindScalar},
	MetricWindowRounding:    {"WindowRounding", KindScalar},
	MetricChildRounding:     {"ChildRounding", KindScalar},
	MetricFrameRounding:     {"FrameRounding", KindScalar},
	MetricPopupRounding:     {"PopupRounding", KindScalar},
	MetricScrollbarRounding: {"ScrollbarRounding", KindScalar},
	MetricGrabRounding:      {"GrabRounding", KindScalar},
	MetricLogSliderDeadzone: {"LogSliderDeadzone", KindScalar},
	MetricTabRounding:       {"TabRounding", KindScalar},
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool { return m >= 0 && m < MetricCount }

func (m Metric) String() string {
	if !m.Valid() {
		return "Metric(" + strconv.Itoa(int(m)) + ")"
	}
	return metricInfo[m].name
}

// Kind reports the value shape the metric expects.
func (m Metric) Kind() MetricKind {
	if !m.Valid() {
		return KindScalar
	}
	return metricInfo[m].kind
}

// MetricValue is either a scalar or a Vec2, see Scalar and Vector.
type MetricValue struct {
	kind MetricKind
	vec  Vec2
}

// Scalar returns a scalar metric value.
func Scalar(v float32) MetricValue { return MetricValue{kind: KindScalar, vec: Vec2{X: v}} }

// Vector returns a two component metric value.
func Vector(x, y float32) MetricValue { return MetricValue{kind: KindVector, vec: Vec2{X: x, Y: y}} }

func (v MetricValue) Kind() MetricKind { return v.kind }

// Float returns the scalar value. For vectors it returns X.
func (v MetricValue) Float() float32 { return v.vec.X }

// Vec returns the vector value. For scalars Y is zero.
func (v MetricValue) Vec() Vec2 { return v.vec }

func (v MetricValue) String() string {
	if v.kind == KindVector {
		return fmt.Sprintf("(%.2f, %.2f)", v.vec.X, v.vec.Y)
	}
	return fmt.Sprintf("%.2f", v.vec.X)
}

package theme

import (
	"fmt"

	"imstyles/fonts"
	"imstyles/style"
)

// StyleTarget is a style object a theme can be written into. *style.Style
// implements it. Implementations return an error wrapping
// style.ErrConfigMismatch for roles or metrics outside their schema.
type StyleTarget interface {
	SetColor(role style.Role, c style.Color) error
	SetMetric(m style.Metric, v style.MetricValue) error
}

// Context owns a style object and a font registry.
type Context interface {
	Style() StyleTarget
	Fonts() fonts.Target
}

// Patch overwrites every role and metric the theme lists and leaves the
// rest of target untouched. Colors are written in role order, then metrics
// in metric order. The first error stops the patch and is returned; the
// target may then be partly patched.
func (t *Theme) Patch(target StyleTarget) error {
	for _, e := range t.Colors() {
		if err := target.SetColor(e.Role, e.Color); err != nil {
			return fmt.Errorf("theme %s: color %v: %w", t.name, e.Role, err)
		}
	}
	for _, e := range t.Metrics() {
		if err := target.SetMetric(e.Metric, e.Value); err != nil {
			return fmt.Errorf("theme %s: metric %v: %w", t.name, e.Metric, err)
		}
	}
	return nil
}

// NewStyle returns the toolkit default style with the theme applied.
func (t *Theme) NewStyle() (*style.Style, error) {
	return t.NewStyleFrom(style.Default)
}

// NewStyleFrom builds a style with newDefault, the toolkit's canonical
// constructor, and applies the theme to it.
func (t *Theme) NewStyleFrom(newDefault func() *style.Style) (*style.Style, error) {
	s := newDefault()
	if s == nil {
		return nil, fmt.Errorf("theme %s: default style constructor returned nil", t.name)
	}
	if err := t.Patch(s); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNewStyle is like NewStyle but panics on error. Built-in themes always
// match the style schema.
func (t *Theme) MustNewStyle() *style.Style {
	s, err := t.NewStyle()
	if err != nil {
		panic(err)
	}
	return s
}

// PatchContext patches the context's style and installs the bundled font
// at the theme's font size. Any fonts already in the context's registry
// are discarded.
func (t *Theme) PatchContext(ctx Context) error {
	return t.PatchContextWith(ctx, fonts.GoRegular, t.fontSize)
}

// PatchContextWith is PatchContext with a caller chosen font and size.
func (t *Theme) PatchContextWith(ctx Context, font fonts.Asset, sizeInPixels float32) error {
	if err := t.Patch(ctx.Style()); err != nil {
		return err
	}
	if err := font.Install(ctx.Fonts(), sizeInPixels); err != nil {
		return fmt.Errorf("theme %s: %w", t.name, err)
	}
	return nil
}

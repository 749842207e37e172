// Package render holds the render context a theme is applied to and an
// ebiten preview that draws widgets with it.
package render

import (
	"imstyles/fonts"
	"imstyles/style"
	"imstyles/theme"
)

// Context owns the style object and the font registry used for drawing.
// It is not safe for concurrent use; patch it on the render thread.
type Context struct {
	style *style.Style
	fonts *fonts.FaceRegistry
}

// NewContext wraps s and reg. A nil style starts from style.Default and a
// nil registry starts empty.
func NewContext(s *style.Style, reg *fonts.FaceRegistry) *Context {
	if s == nil {
		s = style.Default()
	}
	if reg == nil {
		reg = fonts.NewFaceRegistry()
	}
	return &Context{style: s, fonts: reg}
}

// Style implements theme.Context.
func (c *Context) Style() theme.StyleTarget { return c.style }

// Fonts implements theme.Context.
func (c *Context) Fonts() fonts.Target { return c.fonts }

// StyleObject returns the style for reading.
func (c *Context) StyleObject() *style.Style { return c.style }

// Registry returns the font registry.
func (c *Context) Registry() *fonts.FaceRegistry { return c.fonts }

// ResetStyle replaces the style with s, typically a fresh canonical default
// before switching themes. A nil s resets to style.Default.
func (c *Context) ResetStyle(s *style.Style) {
	if s == nil {
		s = style.Default()
	}
	c.style = s
}

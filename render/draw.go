package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"imstyles/style"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func roundRectPath(r rect, radius float32) *vector.Path {
	radius = clampRounding(r, radius)
	p := &vector.Path{}
	if radius == 0 {
		p.MoveTo(r.X0, r.Y0)
		p.LineTo(r.X1, r.Y0)
		p.LineTo(r.X1, r.Y1)
		p.LineTo(r.X0, r.Y1)
		p.Close()
		return p
	}
	p.MoveTo(r.X0+radius, r.Y0)
	p.LineTo(r.X1-radius, r.Y0)
	p.ArcTo(r.X1, r.Y0, r.X1, r.Y0+radius, radius)
	p.LineTo(r.X1, r.Y1-radius)
	p.ArcTo(r.X1, r.Y1, r.X1-radius, r.Y1, radius)
	p.LineTo(r.X0+radius, r.Y1)
	p.ArcTo(r.X0, r.Y1, r.X0, r.Y1-radius, radius)
	p.LineTo(r.X0, r.Y0+radius)
	p.ArcTo(r.X0, r.Y0, r.X0+radius, r.Y0, radius)
	p.Close()
	return p
}

func drawPath(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c style.Color) {
	nc := c.ToNRGBA()
	if nc.A == 0 {
		return
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(nc.R) / 0xff
		vs[i].ColorG = float32(nc.G) / 0xff
		vs[i].ColorB = float32(nc.B) / 0xff
		vs[i].ColorA = float32(nc.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	dst.DrawTriangles(vs, is, white(), op)
}

// fillRoundRect fills r with corners of the given radius.
func fillRoundRect(dst *ebiten.Image, r rect, radius float32, c style.Color) {
	vs, is := roundRectPath(r, radius).AppendVerticesAndIndicesForFilling(nil, nil)
	drawPath(dst, vs, is, c)
}

// strokeRoundRect outlines r. A zero or negative width draws nothing, the
// same way a zero border size hides borders in the toolkit.
func strokeRoundRect(dst *ebiten.Image, r rect, radius, width float32, c style.Color) {
	if width <= 0 {
		return
	}
	vs, is := roundRectPath(r, radius).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	drawPath(dst, vs, is, c)
}

func drawLine(dst *ebiten.Image, x0, y0, x1, y1, width float32, c style.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, c.ToNRGBA(), true)
}

// drawText draws s with its top-left corner at x, y.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float32, c style.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.ToNRGBA())
	text.Draw(dst, s, face, op)
}

// drawTextCentered centers s inside r.
func drawTextCentered(dst *ebiten.Image, s string, face text.Face, r rect, c style.Color) {
	w, h := text.Measure(s, face, 0)
	x := r.X0 + (r.W()-float32(w))/2
	y := r.Y0 + (r.H()-float32(h))/2
	drawText(dst, s, face, x, y, c)
}

// measure returns the size of s drawn with the context's default font.
func measure(ctx *Context, s string, size float32) (float32, float32) {
	w, h := text.Measure(s, ctx.fonts.Face(size), 0)
	return float32(w), float32(h)
}

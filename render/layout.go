package render

import "imstyles/style"

type rect struct {
	X0, Y0, X1, Y1 float32
}

func newRect(x, y, w, h float32) rect {
	return rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r rect) W() float32 { return r.X1 - r.X0 }
func (r rect) H() float32 { return r.Y1 - r.Y0 }

func (r rect) contains(x, y float32) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// inset shrinks r by p on each side.
func (r rect) inset(p style.Vec2) rect {
	return rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 - p.X, Y1: r.Y1 - p.Y}
}

// swatchLayout places one swatch per role in a column-major grid starting
// at origin. Rows per column are derived from the available height.
func swatchLayout(origin style.Vec2, cell style.Vec2, height float32, count int) []rect {
	if count <= 0 || cell.Y <= 0 {
		return nil
	}
	rows := int(height / cell.Y)
	if rows < 1 {
		rows = 1
	}
	out := make([]rect, count)
	for i := range out {
		col := i / rows
		row := i % rows
		out[i] = newRect(origin.X+float32(col)*cell.X, origin.Y+float32(row)*cell.Y, cell.X, cell.Y)
	}
	return out
}

// rowLayout lays out widths left to right with spacing, vertically at y.
func rowLayout(x, y, h, spacing float32, widths ...float32) []rect {
	out := make([]rect, len(widths))
	for i, w := range widths {
		out[i] = newRect(x, y, w, h)
		x += w + spacing
	}
	return out
}

// clampRounding keeps a corner radius inside half the smaller side.
func clampRounding(r rect, radius float32) float32 {
	limit := r.W()
	if r.H() < limit {
		limit = r.H()
	}
	limit /= 2
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"imstyles/fonts"
	"imstyles/style"
	"imstyles/theme"
)

const (
	previewFontSize = 14
	swatchFontSize  = 11
)

var (
	darkBackdrop  = style.NewColor(0.18, 0.18, 0.20, 1)
	lightBackdrop = style.NewColor(0.86, 0.86, 0.88, 1)
)

// Preview is an ebiten game drawing a mock window and every color role of
// the active theme.
type Preview struct {
	ctx        *Context
	themes     []*theme.Theme
	current    int
	newDefault func() *style.Style
	font       fonts.Asset
	fontSize   float32
	backdrop   style.Color
	log        zerolog.Logger

	width, height int
	mouseX        float32
	mouseY        float32
	pressed       bool
	checked       bool
	slider        float32
}

// PreviewOption configures a Preview.
type PreviewOption func(*Preview)

// WithLogger sets the preview logger.
func WithLogger(l zerolog.Logger) PreviewOption {
	return func(p *Preview) { p.log = l }
}

// WithDarkBackdrop picks the backdrop behind the mock window. Use the
// desktop's light or dark setting so the theme is judged in context.
func WithDarkBackdrop(dark bool) PreviewOption {
	return func(p *Preview) {
		if dark {
			p.backdrop = darkBackdrop
		} else {
			p.backdrop = lightBackdrop
		}
	}
}

// WithFont overrides the font installed with each theme.
func WithFont(a fonts.Asset) PreviewOption {
	return func(p *Preview) { p.font = a }
}

// WithFontSize overrides the pixel size the font is installed at.
func WithFontSize(size float32) PreviewOption {
	return func(p *Preview) { p.fontSize = size }
}

// WithDefaultStyle sets the canonical style constructor used before each
// theme is applied.
func WithDefaultStyle(newDefault func() *style.Style) PreviewOption {
	return func(p *Preview) { p.newDefault = newDefault }
}

// NewPreview returns a preview showing start. Tab cycles through themes.
func NewPreview(ctx *Context, start *theme.Theme, themes []*theme.Theme, opts ...PreviewOption) (*Preview, error) {
	if ctx == nil {
		return nil, errors.New("render: nil context")
	}
	if len(themes) == 0 {
		themes = theme.All()
	}
	p := &Preview{
		ctx:        ctx,
		themes:     themes,
		newDefault: style.Default,
		font:       fonts.GoRegular,
		backdrop:   darkBackdrop,
		log:        zerolog.Nop(),
		width:      1100,
		height:     700,
		slider:     0.4,
		checked:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.current = indexOf(themes, start)
	if err := p.apply(); err != nil {
		return nil, err
	}
	return p, nil
}

func indexOf(themes []*theme.Theme, t *theme.Theme) int {
	for i, th := range themes {
		if th == t {
			return i
		}
	}
	return 0
}

// Theme returns the theme being shown.
func (p *Preview) Theme() *theme.Theme { return p.themes[p.current] }

// apply rebuilds the style from the canonical default and patches the
// whole context with the current theme.
func (p *Preview) apply() error {
	th := p.Theme()
	s := p.newDefault()
	if s == nil {
		return fmt.Errorf("preview %s: default style constructor returned nil", th.Name())
	}
	p.ctx.ResetStyle(s)
	size := p.fontSize
	if size == 0 {
		size = th.FontSize()
	}
	if err := th.PatchContextWith(p.ctx, p.font, size); err != nil {
		return fmt.Errorf("preview %s: %w", th.Name(), err)
	}
	p.log.Info().Str("theme", th.Name()).Float32("font_size", size).Msg("theme applied")
	return nil
}

// Next switches to the following theme, wrapping around.
func (p *Preview) Next() error {
	p.current = (p.current + 1) % len(p.themes)
	return p.apply()
}

// Update implements ebiten.Game.
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := p.Next(); err != nil {
			return err
		}
		ebiten.SetWindowTitle("imstyles - " + p.Theme().DisplayName())
	}
	mx, my := ebiten.CursorPosition()
	p.mouseX, p.mouseY = float32(mx), float32(my)
	p.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && p.checkboxRect().contains(p.mouseX, p.mouseY) {
		p.checked = !p.checked
	}
	if p.pressed {
		if track := p.sliderRect(); track.contains(p.mouseX, p.mouseY) {
			p.slider = (p.mouseX - track.X0) / track.W()
		}
	}
	return nil
}

// Layout implements ebiten.Game.
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.width, p.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (p *Preview) windowRect() rect { return newRect(24, 24, 520, float32(p.height)-48) }

func (p *Preview) titleRect() rect {
	w := p.windowRect()
	return newRect(w.X0, w.Y0, w.W(), p.lineHeight()+p.ctx.style.FramePadding.Y*2)
}

func (p *Preview) lineHeight() float32 {
	_, h := measure(p.ctx, "Ag", previewFontSize)
	return h
}

// contentRect is the area inside the window padding, below the title and
// menu bars, left of the scrollbar.
func (p *Preview) contentRect() rect {
	s := p.ctx.style
	w := p.windowRect()
	top := p.titleRect().Y1 + p.titleRect().H()
	r := rect{X0: w.X0, Y0: top, X1: w.X1 - s.ScrollbarSize, Y1: w.Y1}
	return r.inset(s.WindowPadding)
}

func (p *Preview) frameHeight() float32 {
	return p.lineHeight() + p.ctx.style.FramePadding.Y*2
}

func (p *Preview) checkboxRect() rect {
	c := p.contentRect()
	y := c.Y0 + 2*(p.lineHeight()+p.ctx.style.ItemSpacing.Y) + p.frameHeight() + p.ctx.style.ItemSpacing.Y
	return newRect(c.X0, y, p.frameHeight(), p.frameHeight())
}

func (p *Preview) sliderRect() rect {
	c := p.contentRect()
	cb := p.checkboxRect()
	return newRect(c.X0, cb.Y1+p.ctx.style.ItemSpacing.Y, c.W()*0.6, p.frameHeight())
}

func (p *Preview) color(r style.Role) style.Color { return p.ctx.style.Colors[r] }

// Draw implements ebiten.Game.
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(p.backdrop.ToNRGBA())
	p.drawWindow(screen)
	p.drawSwatches(screen)
}

func (p *Preview) drawWindow(dst *ebiten.Image) {
	s := p.ctx.style
	face := p.ctx.fonts.Face(previewFontSize)
	win := p.windowRect()

	// shadow, body, border
	fillRoundRect(dst, newRect(win.X0+3, win.Y0+3, win.W(), win.H()), s.WindowRounding, p.color(style.RoleBorderShadow))
	fillRoundRect(dst, win, s.WindowRounding, p.color(style.RoleWindowBg))

	title := p.titleRect()
	fillRoundRect(dst, title, s.WindowRounding, p.color(style.RoleTitleBgActive))
	drawText(dst, p.Theme().DisplayName(), face, title.X0+s.FramePadding.X, title.Y0+s.FramePadding.Y, p.color(style.RoleText))

	menu := newRect(win.X0, title.Y1, win.W(), title.H())
	fillRoundRect(dst, menu, 0, p.color(style.RoleMenuBarBg))
	x := menu.X0 + s.WindowPadding.X
	for _, item := range []string{"File", "Edit", "View"} {
		drawText(dst, item, face, x, menu.Y0+s.FramePadding.Y, p.color(style.RoleText))
		w, _ := measure(p.ctx, item, previewFontSize)
		x += w + s.ItemSpacing.X*2
	}
	strokeRoundRect(dst, win, s.WindowRounding, s.WindowBorderSize, p.color(style.RoleBorder))

	c := p.contentRect()
	lh := p.lineHeight()
	y := c.Y0
	drawText(dst, "Primary text", face, c.X0, y, p.color(style.RoleText))
	y += lh + s.ItemSpacing.Y
	drawText(dst, "Disabled text", face, c.X0, y, p.color(style.RoleTextDisabled))
	y += lh + s.ItemSpacing.Y

	// buttons: normal, hovered or pressed under the cursor
	fh := p.frameHeight()
	labels := []string{"Button", "Hovered", "Active"}
	roles := []style.Role{style.RoleButton, style.RoleButtonHovered, style.RoleButtonActive}
	for i, r := range rowLayout(c.X0, y, fh, s.ItemSpacing.X, 96, 96, 96) {
		role := roles[i]
		if r.contains(p.mouseX, p.mouseY) {
			role = style.RoleButtonHovered
			if p.pressed {
				role = style.RoleButtonActive
			}
		}
		fillRoundRect(dst, r, s.FrameRounding, p.color(role))
		strokeRoundRect(dst, r, s.FrameRounding, s.FrameBorderSize, p.color(style.RoleBorder))
		drawTextCentered(dst, labels[i], face, r, p.color(style.RoleText))
	}

	// checkbox
	cb := p.checkboxRect()
	p.drawFrame(dst, cb)
	if p.checked {
		pad := fh / 4
		drawLine(dst, cb.X0+pad, cb.Y0+fh/2, cb.X0+fh/2-1, cb.Y1-pad, 2, p.color(style.RoleCheckMark))
		drawLine(dst, cb.X0+fh/2-1, cb.Y1-pad, cb.X1-pad, cb.Y0+pad, 2, p.color(style.RoleCheckMark))
	}
	drawText(dst, "Checkbox", face, cb.X1+s.ItemInnerSpacing.X, cb.Y0+s.FramePadding.Y, p.color(style.RoleText))

	// slider
	sl := p.sliderRect()
	p.drawFrame(dst, sl)
	grabW := s.GrabMinSize
	grabX := sl.X0 + 2 + (sl.W()-grabW-4)*clamp01(p.slider)
	grab := newRect(grabX, sl.Y0+2, grabW, sl.H()-4)
	grabRole := style.RoleSliderGrab
	if p.pressed && sl.contains(p.mouseX, p.mouseY) {
		grabRole = style.RoleSliderGrabActive
	}
	fillRoundRect(dst, grab, s.GrabRounding, p.color(grabRole))
	drawText(dst, "Slider", face, sl.X1+s.ItemInnerSpacing.X, sl.Y0+s.FramePadding.Y, p.color(style.RoleText))

	// tabs
	y = sl.Y1 + s.ItemSpacing.Y
	tabRoles := []style.Role{style.RoleTabActive, style.RoleTab, style.RoleTabHovered, style.RoleTabUnfocused, style.RoleTabUnfocusedActive}
	tabNames := []string{"Active", "Tab", "Hovered", "Unfocused", "Unf. act."}
	for i, r := range rowLayout(c.X0, y, fh, 2, 84, 84, 84, 84, 84) {
		fillRoundRect(dst, r, s.TabRounding, p.color(tabRoles[i]))
		strokeRoundRect(dst, r, s.TabRounding, s.TabBorderSize, p.color(style.RoleBorder))
		drawTextCentered(dst, tabNames[i], face, r, p.color(style.RoleText))
	}
	y += fh
	drawLine(dst, c.X0, y, c.X1, y, 1, p.color(style.RoleSeparator))
	y += s.ItemSpacing.Y

	// headers
	for _, role := range []style.Role{style.RoleHeader, style.RoleHeaderHovered, style.RoleHeaderActive} {
		r := newRect(c.X0, y, c.W(), fh)
		fillRoundRect(dst, r, s.FrameRounding, p.color(role))
		drawText(dst, role.String(), face, r.X0+s.FramePadding.X, r.Y0+s.FramePadding.Y, p.color(style.RoleText))
		y += fh + s.ItemSpacing.Y
	}

	// plots
	plot := newRect(c.X0, y, c.W()/2-s.ItemSpacing.X/2, 70)
	hist := newRect(plot.X1+s.ItemSpacing.X, y, c.W()/2-s.ItemSpacing.X/2, 70)
	p.drawFrame(dst, plot)
	p.drawFrame(dst, hist)
	const samples = 24
	var px, py float32
	for i := 0; i < samples; i++ {
		t := float32(i) / (samples - 1)
		v := float32(0.5 + 0.4*math.Sin(float64(t)*2*math.Pi))
		x := plot.X0 + 4 + t*(plot.W()-8)
		yy := plot.Y1 - 4 - v*(plot.H()-8)
		if i > 0 {
			drawLine(dst, px, py, x, yy, 1.5, p.color(style.RolePlotLines))
		}
		px, py = x, yy
	}
	bars := 8
	bw := (hist.W() - 8) / float32(bars)
	for i := 0; i < bars; i++ {
		v := float32(i+1) / float32(bars)
		role := style.RolePlotHistogram
		if i == bars-1 {
			role = style.RolePlotHistogramHovered
		}
		fillRoundRect(dst, newRect(hist.X0+4+float32(i)*bw, hist.Y1-4-v*(hist.H()-8), bw-1, v*(hist.H()-8)), 0, p.color(role))
	}
	y = plot.Y1 + s.ItemSpacing.Y

	// table
	rowH := lh + s.CellPadding.Y*2
	head := newRect(c.X0, y, c.W(), rowH)
	fillRoundRect(dst, head, 0, p.color(style.RoleTableHeaderBg))
	drawText(dst, "Role", face, head.X0+s.CellPadding.X, head.Y0+s.CellPadding.Y, p.color(style.RoleText))
	for i := 0; i < 4 && y+rowH*float32(i+2) < c.Y1; i++ {
		row := newRect(c.X0, y+rowH*float32(i+1), c.W(), rowH)
		role := style.RoleTableRowBg
		if i%2 == 1 {
			role = style.RoleTableRowBgAlt
		}
		fillRoundRect(dst, row, 0, p.color(role))
		drawLine(dst, row.X0, row.Y1, row.X1, row.Y1, 1, p.color(style.RoleTableBorderLight))
		drawText(dst, fmt.Sprintf("Row %d", i+1), face, row.X0+s.CellPadding.X, row.Y0+s.CellPadding.Y, p.color(style.RoleText))
	}
	strokeRoundRect(dst, newRect(c.X0, y, c.W(), rowH*5), 0, 1, p.color(style.RoleTableBorderStrong))

	// scrollbar along the right edge
	sb := newRect(win.X1-s.ScrollbarSize, p.titleRect().Y1+title.H(), s.ScrollbarSize, win.Y1-p.titleRect().Y1-title.H()-s.WindowRounding)
	fillRoundRect(dst, sb, 0, p.color(style.RoleScrollbarBg))
	sbGrab := newRect(sb.X0+2, sb.Y0+2, sb.W()-4, sb.H()/3)
	sbRole := style.RoleScrollbarGrab
	if sbGrab.contains(p.mouseX, p.mouseY) {
		sbRole = style.RoleScrollbarGrabHovered
		if p.pressed {
			sbRole = style.RoleScrollbarGrabActive
		}
	}
	fillRoundRect(dst, sbGrab, s.ScrollbarRounding, p.color(sbRole))

	// resize grip
	g := s.ScrollbarSize
	grip := newRect(win.X1-g, win.Y1-g, g, g)
	fillRoundRect(dst, grip, 0, p.color(style.RoleResizeGrip))
}

func (p *Preview) drawFrame(dst *ebiten.Image, r rect) {
	s := p.ctx.style
	role := style.RoleFrameBg
	if r.contains(p.mouseX, p.mouseY) {
		role = style.RoleFrameBgHovered
		if p.pressed {
			role = style.RoleFrameBgActive
		}
	}
	fillRoundRect(dst, r, s.FrameRounding, p.color(role))
	strokeRoundRect(dst, r, s.FrameRounding, s.FrameBorderSize, p.color(style.RoleBorder))
}

func (p *Preview) drawSwatches(dst *ebiten.Image) {
	face := p.ctx.fonts.Face(swatchFontSize)
	win := p.windowRect()
	origin := style.Vec2{X: win.X1 + 24, Y: win.Y0}
	cell := style.Vec2{X: 180, Y: 22}
	label := p.color(style.RoleText)
	if p.backdrop == lightBackdrop {
		label = style.NewColor(0, 0, 0, 1)
	}
	for i, r := range swatchLayout(origin, cell, win.H(), int(style.RoleCount)) {
		role := style.Role(i)
		box := newRect(r.X0, r.Y0+3, 16, 16)
		fillRoundRect(dst, box, 2, p.color(role))
		strokeRoundRect(dst, box, 2, 1, label)
		drawText(dst, role.String(), face, box.X1+6, r.Y0+4, label)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

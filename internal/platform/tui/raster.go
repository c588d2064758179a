package tui

import (
	"math"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Glyphs used when rasterizing shapes.
const (
	glyphFill   = '█'
	glyphBall   = '●'
	glyphLine   = '─'
	overlayPadX = 4
)

// viewport maps world coordinates onto the playfield cells below the HUD.
type viewport struct {
	top        int // first playfield row
	cols, rows int
	sx, sy     float64 // cells per world unit
}

func newViewport(d core.DrawList, screenW, screenH int) viewport {
	v := viewport{
		top:  len(d.HUD),
		cols: max(screenW, 1),
	}
	v.rows = max(screenH-v.top, 1)
	if d.Width > 0 {
		v.sx = float64(v.cols) / d.Width
	}
	if d.Height > 0 {
		v.sy = float64(v.rows) / d.Height
	}
	return v
}

// cell returns the screen cell containing world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// world returns the world coordinates of the centre of a screen cell.
func (v viewport) world(col, row int) (float64, float64) {
	if v.sx == 0 || v.sy == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / v.sx, (float64(row-v.top) + 0.5) / v.sy
}

// Rasterize draws a frame into s. The HUD takes the top rows and the world
// is scaled to fill the rest of the screen.
func Rasterize(s *core.Screen, d core.DrawList) {
	s.Clear()
	v := newViewport(d, s.Width(), s.Height())

	for i, line := range d.HUD {
		s.DrawTextColored(0, i, line, core.ColorBrightWhite)
	}

	for _, item := range d.Items {
		switch item.Kind {
		case core.DrawRect:
			rasterRect(s, v, item)
		case core.DrawCircle:
			rasterCircle(s, v, item)
		case core.DrawLine:
			x0, y := v.cell(item.X, item.Y)
			x1, _ := v.cell(item.X+item.W, item.Y)
			s.DrawHLine(x0, y, max(x1-x0, 1), glyphLine, item.Color)
		}
	}

	if d.Overlay != nil {
		drawOverlay(s, v, *d.Overlay)
	}
}

// rasterRect fills every cell whose centre lies inside the (possibly
// rotated) rectangle. Shapes smaller than a cell still mark the cell under
// their anchor.
func rasterRect(s *core.Screen, v viewport, it core.DrawItem) {
	sin, cos := math.Sincos(it.Rotation * math.Pi / 180)

	// World position of a local rectangle point.
	toWorld := func(lx, ly float64) (float64, float64) {
		dx, dy := lx-it.OriginX, ly-it.OriginY
		return it.X + dx*cos - dy*sin, it.Y + dx*sin + dy*cos
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {it.W, 0}, {0, it.H}, {it.W, it.H}} {
		wx, wy := toWorld(c[0], c[1])
		minX, maxX = min(minX, wx), max(maxX, wx)
		minY, maxY = min(minY, wy), max(maxY, wy)
	}

	c0, r0 := v.cell(minX, minY)
	c1, r1 := v.cell(maxX, maxY)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			wx, wy := v.world(col, row)
			dx, dy := wx-it.X, wy-it.Y
			lx := dx*cos + dy*sin + it.OriginX
			ly := -dx*sin + dy*cos + it.OriginY
			if lx < 0 || lx > it.W || ly < 0 || ly > it.H {
				continue
			}
			s.SetCell(col, row, glyphFill, it.Color)
			filled = true
		}
	}

	if !filled {
		cx, cy := toWorld(it.W/2, it.H/2)
		col, row := v.cell(cx, cy)
		s.SetCell(col, row, glyphFill, it.Color)
	}
}

func rasterCircle(s *core.Screen, v viewport, it core.DrawItem) {
	c0, r0 := v.cell(it.X-it.Radius, it.Y-it.Radius)
	c1, r1 := v.cell(it.X+it.Radius, it.Y+it.Radius)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			wx, wy := v.world(col, row)
			dx, dy := wx-it.X, wy-it.Y
			if dx*dx+dy*dy > it.Radius*it.Radius {
				continue
			}
			s.SetCell(col, row, glyphBall, it.Color)
			filled = true
		}
	}
	if !filled {
		col, row := v.cell(it.X, it.Y)
		s.SetCell(col, row, glyphBall, it.Color)
	}
}

// drawOverlay draws a framed message box centred on the playfield.
func drawOverlay(s *core.Screen, v viewport, o core.Overlay) {
	lines := []string{o.Title, "", o.Subtitle, "", o.Hint}
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += overlayPadX * 2
	height := len(lines) + 2

	box := core.NewRect((s.Width()-width)/2, v.top+(v.rows-height)/2, width, height)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightWhite)

	colors := []core.Color{core.ColorBrightYellow, core.ColorDefault, core.ColorWhite, core.ColorDefault, core.ColorGray}
	for i, l := range lines {
		if l == "" {
			continue
		}
		s.DrawTextCentered(box.Y+1+i, l, colors[i])
	}
}

package core

import "strings"

// Cell is one character of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a grid of coloured runes that terminal hosts rasterize a draw
// list into. Writes outside the grid are dropped.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen returns a blank width x height buffer. Negative sizes are
// treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(width, 0), height: max(height, 0)}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// bounds is the whole grid as a Rect.
func (s *Screen) bounds() Rect { return Rect{W: s.width, H: s.height} }

// Resize changes the grid size. Cells inside both the old and new size
// keep their content.
func (s *Screen) Resize(width, height int) {
	next := NewScreen(width, height)
	if next.width == s.width && next.height == s.height {
		return
	}
	keep := s.bounds().Intersect(next.bounds())
	for y := range keep.H {
		copy(next.cells[y*next.width:y*next.width+keep.W], s.cells[y*s.width:])
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// SetCell writes one coloured rune.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if s.bounds().Contains(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell reads one cell. Outside the grid it returns a blank cell.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.bounds().Contains(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Get reads the rune of one cell.
func (s *Screen) Get(x, y int) rune { return s.GetCell(x, y).Rune }

// DrawText writes uncoloured text starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text starting at (x, y), one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text horizontally centred on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawTextColored((s.width-len([]rune(text)))/2, y, text, c)
}

// DrawRect fills r with one rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	r = r.Intersect(s.bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y*s.width:]
		for x := r.X; x < r.Right(); x++ {
			row[x] = Cell{Rune: fill, Color: c}
		}
	}
}

// DrawBox outlines r with box-drawing runes. Boxes smaller than 2x2 are
// skipped.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1

	s.DrawHLine(left+1, top, r.W-2, '─', c)
	s.DrawHLine(left+1, bottom, r.W-2, '─', c)
	for y := top + 1; y < bottom; y++ {
		s.SetCell(left, y, '│', c)
		s.SetCell(right, y, '│', c)
	}
	s.SetCell(left, top, '┌', c)
	s.SetCell(right, top, '┐', c)
	s.SetCell(left, bottom, '└', c)
	s.SetCell(right, bottom, '┘', c)
}

// DrawHLine writes length copies of r rightward from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	s.DrawRect(Rect{X: x, Y: y, W: length, H: 1}, r, c)
}

// Row returns row y as plain text. Rows outside the grid are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the whole grid as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

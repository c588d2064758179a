package core

// DrawKind discriminates draw list items.
type DrawKind uint8

const (
	DrawRect   DrawKind = iota // filled rectangle, optionally rotated about its origin
	DrawCircle                 // filled circle centred at X, Y
	DrawLine                   // horizontal line from X to X+W at Y
)

// DrawItem is one shape in world coordinates.
//
// Rectangles are placed so that their local point (OriginX, OriginY) sits at
// (X, Y) and are rotated by Rotation degrees around it. With a zero origin,
// (X, Y) is the top-left corner.
type DrawItem struct {
	Kind     DrawKind
	X, Y     float64
	W, H     float64
	Radius   float64
	Rotation float64
	OriginX  float64
	OriginY  float64
	Color    Color
}

// Overlay is modal text shown over the playfield.
type Overlay struct {
	Title    string
	Subtitle string
	Hint     string
}

// DrawList is everything a host needs to present one frame.
type DrawList struct {
	Width, Height float64 // world size
	Items         []DrawItem
	HUD           []string
	Overlay       *Overlay
}

// Rect appends a filled axis-aligned rectangle.
func (d *DrawList) Rect(x, y, w, h float64, c Color) {
	d.Items = append(d.Items, DrawItem{Kind: DrawRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Circle appends a filled circle.
func (d *DrawList) Circle(x, y, r float64, c Color) {
	d.Items = append(d.Items, DrawItem{Kind: DrawCircle, X: x, Y: y, Radius: r, Color: c})
}

// Line appends a horizontal line.
func (d *DrawList) Line(x, y, w float64, c Color) {
	d.Items = append(d.Items, DrawItem{Kind: DrawLine, X: x, Y: y, W: w, Color: c})
}

// Add appends an arbitrary item.
func (d *DrawList) Add(item DrawItem) {
	d.Items = append(d.Items, item)
}

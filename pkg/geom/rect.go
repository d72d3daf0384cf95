// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds the rectangle of size (w, h) centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Overlaps reports whether a and b intersect. Touching edges count as an
// overlap, so the test is symmetric and closed.
func Overlaps(a, b Rect) bool {
	return !(a.X+a.W < b.X || a.X > b.X+b.W || a.Y+a.H < b.Y || a.Y > b.Y+b.H)
}

// Contains reports whether the point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

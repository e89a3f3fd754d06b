package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports a strict AABB overlap. Boxes that only share an edge do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// OverlapsX reports a strict overlap of the horizontal spans only.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X
}

// Contains reports whether r lies completely inside o.
func (r Rect) Contains(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

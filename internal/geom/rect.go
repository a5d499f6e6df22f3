package geom

import "github.com/paulmach/orb"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Obstacles (room footprints) are Rects; width and height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bound returns the rectangle as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Height},
	}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	b := r.Bound().Pad(d)
	return Rect{
		X:      b.Min[0],
		Y:      b.Min[1],
		Width:  b.Max[0] - b.Min[0],
		Height: b.Max[1] - b.Min[1],
	}
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() Point {
	return FromOrb(r.Bound().Center())
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return r.Bound().Contains(p.Orb())
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// Edges returns the four boundary segments of the rectangle.
func (r Rect) Edges() [4][2]Point {
	c := r.Corners()
	return [4][2]Point{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

package navgrid

import "math"

// Nearest returns c itself when it is free, otherwise the free cell closest
// to c on the smallest Chebyshev ring (radius 1..10) that has one. If no
// ring within range has a free cell, c is returned unchanged with ok false.
func (g *Grid) Nearest(c Cell) (Cell, bool) {
	if g.Free(c) {
		return c, true
	}

	for radius := 1; radius <= maxSnapRadius; radius++ {
		best := c
		bestDist := math.Inf(1)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if abs(dx) != radius && abs(dy) != radius {
					continue
				}
				candidate := Cell{Col: c.Col + dx, Row: c.Row + dy}
				if !g.Free(candidate) {
					continue
				}
				if d := math.Hypot(float64(dx), float64(dy)); d < bestDist {
					best, bestDist = candidate, d
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			return best, true
		}
	}
	return c, false
}

// LineOfSight samples the straight line between the centres of a and b one
// cell at a time and reports whether every sampled cell is free.
func (g *Grid) LineOfSight(a, b Cell) bool {
	dx := b.Col - a.Col
	dy := b.Row - a.Row
	steps := max(abs(dx), abs(dy))

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c := Cell{
			Col: int(math.Round(float64(a.Col) + float64(dx)*t)),
			Row: int(math.Round(float64(a.Row) + float64(dy)*t)),
		}
		if g.Blocked(c) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

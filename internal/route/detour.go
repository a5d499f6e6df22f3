package route

import (
	"math"

	"github.com/samdwyer/officenav/internal/geom"
)

// Detour is the last-resort router used when the grid search fails. It
// takes the first obstacle crossing the straight line start-end and goes
// via whichever of its corners, pushed out by buffer pixels, gives the
// shortest total distance. Other obstacles are not considered, so the
// result is best effort only. With no blocking obstacle the straight line
// is returned.
func Detour(start, end geom.Point, obstacles []geom.Rect, buffer float64) []geom.Point {
	for _, o := range obstacles {
		if !geom.SegmentIntersectsRect(start, end, o) {
			continue
		}

		best := start
		bestDist := math.Inf(1)
		for _, c := range o.Expand(buffer).Corners() {
			if d := start.Dist(c) + c.Dist(end); d < bestDist {
				best, bestDist = c, d
			}
		}
		return []geom.Point{start, best, end}
	}
	return straight(start, end)
}

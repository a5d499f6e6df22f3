package route

import "github.com/samdwyer/officenav/internal/geom"

// Simplify removes waypoints from path wherever a later waypoint can be
// reached in a straight line that keeps buffer pixels away from every
// obstacle. Points are only dropped, never moved, and the first and last
// points always survive. Two greedy passes run; the second catches skips
// the first pass missed.
func Simplify(path []geom.Point, obstacles []geom.Rect, buffer float64) []geom.Point {
	if len(path) <= 2 {
		return append([]geom.Point(nil), path...)
	}
	expanded := expandAll(obstacles, buffer)
	return pull(pull(path, expanded), expanded)
}

// pull is one greedy pass: from each kept point jump to the farthest point
// with a clear line, or to the next point when there is none.
func pull(path []geom.Point, expanded []geom.Rect) []geom.Point {
	out := []geom.Point{path[0]}
	last := len(path) - 1

	for i := 0; i < last; {
		next := i + 1
		for j := last; j > i+1; j-- {
			if unobstructed(path[i], path[j], expanded) {
				next = j
				break
			}
		}
		out = append(out, path[next])
		i = next
	}
	return out
}

// ClearOfObstacles reports whether segment a-b stays at least buffer pixels
// away from every obstacle.
func ClearOfObstacles(a, b geom.Point, obstacles []geom.Rect, buffer float64) bool {
	return unobstructed(a, b, expandAll(obstacles, buffer))
}

func unobstructed(a, b geom.Point, expanded []geom.Rect) bool {
	for _, r := range expanded {
		if geom.SegmentIntersectsRect(a, b, r) {
			return false
		}
	}
	return true
}

func expandAll(obstacles []geom.Rect, buffer float64) []geom.Rect {
	out := make([]geom.Rect, len(obstacles))
	for i, o := range obstacles {
		out[i] = o.Expand(buffer)
	}
	return out
}

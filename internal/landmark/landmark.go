// Package landmark finds the rooms a route passes by and turns a finished
// path into turn-by-turn walking directions.
package landmark

import (
	"github.com/samdwyer/officenav/internal/floor"
	"github.com/samdwyer/officenav/internal/geom"
)

// alongSamples is the number of equal steps a segment is sampled at.
const alongSamples = 10

// Near returns the sections whose centroid lies within radius of p, in
// input order.
func Near(p geom.Point, sections []floor.Section, radius float64) []floor.Section {
	var out []floor.Section
	for _, s := range sections {
		if s.Center().Dist(p) <= radius {
			out = append(out, s)
		}
	}
	return out
}

// AlongSegment samples a-b at 11 evenly spaced points (both ends included)
// and returns every section near any sample. Each section appears once, in
// the order it was first seen.
func AlongSegment(a, b geom.Point, sections []floor.Section, radius float64) []floor.Section {
	var out []floor.Section
	seen := make(map[string]bool)
	for i := 0; i <= alongSamples; i++ {
		p := a.Lerp(b, float64(i)/alongSamples)
		for _, s := range Near(p, sections, radius) {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			out = append(out, s)
		}
	}
	return out
}

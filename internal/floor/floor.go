// Package floor holds office floor layouts: the floor extent and scale
// plus the rectangular sections (rooms) that act as obstacles and
// landmarks for routing.
package floor

import (
	"strings"

	"github.com/samdwyer/officenav/internal/geom"
)

// SectionType classifies a section.
type SectionType string

const (
	TypeOffice     SectionType = "office"
	TypeMeeting    SectionType = "meeting"
	TypeReception  SectionType = "reception"
	TypeCafeteria  SectionType = "cafeteria"
	TypeStorage    SectionType = "storage"
	TypeDepartment SectionType = "department"
	TypeExecutive  SectionType = "executive"
	TypeLounge     SectionType = "lounge"
)

// LatLng is a geographic anchor carried with floor data. Routing never
// uses it.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Section is a named rectangular area of a floor.
type Section struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Type        SectionType `json:"type" yaml:"type"`
	X           float64     `json:"x" yaml:"x"`
	Y           float64     `json:"y" yaml:"y"`
	Width       float64     `json:"width" yaml:"width"`
	Height      float64     `json:"height" yaml:"height"`
	Coordinates *LatLng     `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// Rect returns the section footprint.
func (s Section) Rect() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Center returns the centroid of the section.
func (s Section) Center() geom.Point {
	return s.Rect().Center()
}

// Entrance returns a point offset pixels outside the section boundary, on
// the side facing toward. If toward lies inside the section, its centre is
// returned.
func (s Section) Entrance(toward geom.Point, offset float64) geom.Point {
	r := s.Rect()
	if toward.X > r.X && toward.X < r.X+r.Width && toward.Y > r.Y && toward.Y < r.Y+r.Height {
		return s.Center()
	}

	p := geom.Point{
		X: min(max(toward.X, r.X), r.X+r.Width),
		Y: min(max(toward.Y, r.Y), r.Y+r.Height),
	}
	switch {
	case toward.X < r.X:
		p.X -= offset
	case toward.X > r.X+r.Width:
		p.X += offset
	}
	switch {
	case toward.Y < r.Y:
		p.Y -= offset
	case toward.Y > r.Y+r.Height:
		p.Y += offset
	}
	return p
}

// Floor is one storey's layout.
type Floor struct {
	ID             int       `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Width          float64   `json:"width" yaml:"width"`
	Height         float64   `json:"height" yaml:"height"`
	MetersPerPixel float64   `json:"metersPerPixel" yaml:"metersPerPixel"`
	Center         *LatLng   `json:"centerCoordinates,omitempty" yaml:"centerCoordinates,omitempty"`
	Sections       []Section `json:"sections" yaml:"sections"`
}

// Obstacles returns every section footprint in declaration order.
func (f *Floor) Obstacles() []geom.Rect {
	rects := make([]geom.Rect, len(f.Sections))
	for i, s := range f.Sections {
		rects[i] = s.Rect()
	}
	return rects
}

// SectionByID returns the section with the given ID, or nil if not found.
func (f *Floor) SectionByID(id string) *Section {
	for i := range f.Sections {
		if f.Sections[i].ID == id {
			return &f.Sections[i]
		}
	}
	return nil
}

// Search returns the sections whose name or type contains term, ignoring
// case, in declaration order. A blank term matches nothing.
func (f *Floor) Search(term string) []Section {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []Section
	for _, s := range f.Sections {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(string(s.Type)), term) {
			out = append(out, s)
		}
	}
	return out
}

// SectionAt returns the first section containing p, or nil.
func (f *Floor) SectionAt(p geom.Point) *Section {
	for i := range f.Sections {
		if f.Sections[i].Rect().Contains(p) {
			return &f.Sections[i]
		}
	}
	return nil
}

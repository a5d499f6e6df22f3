// Package nav ties a floor layout to the route planner and the directions
// builder, and tracks which routing request is the latest.
package nav

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/officenav/internal/floor"
	"github.com/samdwyer/officenav/internal/geom"
	"github.com/samdwyer/officenav/internal/landmark"
	"github.com/samdwyer/officenav/internal/route"
	"github.com/samdwyer/officenav/internal/telemetry"
)

var (
	// ErrUnknownSection is returned when a section ID is not on the floor.
	ErrUnknownSection = errors.New("unknown section")
	// ErrAmbiguousSection is returned when a search term matches several
	// sections.
	ErrAmbiguousSection = errors.New("ambiguous section")
)

// doorwayMeters is how far outside a section wall a doorway sits.
const doorwayMeters = 1.0

// Route is a computed route and its directions.
type Route struct {
	ID         uuid.UUID
	Generation uint64
	Start, End geom.Point
	From, To   *floor.Section // nil when the endpoint is outside every section
	Plan       route.Plan
	Directions landmark.Directions
}

// Path returns the route's waypoints.
func (r Route) Path() []geom.Point {
	return r.Plan.Path
}

// Navigator answers routing requests for one floor. Every request gets a
// new generation; a result is stale once a newer request has started.
type Navigator struct {
	floor      *floor.Floor
	cfg        Config
	planner    *route.Planner
	obstacles  []geom.Rect
	generation atomic.Uint64
}

// New creates a navigator for f.
func New(f *floor.Floor, cfg Config) *Navigator {
	return &Navigator{
		floor:     f,
		cfg:       cfg,
		planner:   route.NewPlanner(route.WithGridCache(cfg.GridCache)),
		obstacles: f.Obstacles(),
	}
}

// Floor returns the floor being navigated.
func (n *Navigator) Floor() *floor.Floor {
	return n.floor
}

// MetersPerPixel returns the effective scale.
func (n *Navigator) MetersPerPixel() float64 {
	if n.cfg.MetersPerPixel > 0 {
		return n.cfg.MetersPerPixel
	}
	if n.floor.MetersPerPixel > 0 {
		return n.floor.MetersPerPixel
	}
	return route.DefaultMetersPerPixel
}

// Current reports whether r belongs to the most recent request.
func (n *Navigator) Current(r Route) bool {
	return r.Generation == n.generation.Load()
}

// Route computes a route between two points. From and To report the
// sections the points fall inside, if any.
func (n *Navigator) Route(ctx context.Context, start, end geom.Point) Route {
	return n.route(ctx, start, end, n.floor.SectionAt(start), n.floor.SectionAt(end))
}

// RouteBetween computes a route between two sections, leaving from and
// arriving at their doorways (or centres when Doorways is off).
func (n *Navigator) RouteBetween(ctx context.Context, fromID, toID string) (Route, error) {
	from := n.floor.SectionByID(fromID)
	if from == nil {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownSection, fromID)
	}
	to := n.floor.SectionByID(toID)
	if to == nil {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownSection, toID)
	}

	start, end := from.Center(), to.Center()
	if n.cfg.Doorways {
		offset := doorwayMeters / n.MetersPerPixel()
		start = from.Entrance(to.Center(), offset)
		end = to.Entrance(from.Center(), offset)
	}
	return n.route(ctx, start, end, from, to), nil
}

func (n *Navigator) route(ctx context.Context, start, end geom.Point, from, to *floor.Section) Route {
	gen := n.generation.Add(1)
	id := uuid.New()

	ctx, span := telemetry.Tracer("nav").Start(ctx, "nav.route")
	defer span.End()

	mpp := n.MetersPerPixel()
	plan := n.planner.Plan(ctx, route.Request{
		Start:          start,
		End:            end,
		Obstacles:      n.obstacles,
		Width:          n.floor.Width,
		Height:         n.floor.Height,
		MetersPerPixel: mpp,
	})

	limit := landmark.DefaultLimit
	if n.cfg.Compact {
		limit = landmark.CompactLimit
	}
	directions := landmark.Describe(plan.Path, n.floor.Sections, mpp, limit)

	span.SetAttributes(
		attribute.String("nav.request_id", id.String()),
		attribute.Int64("nav.generation", int64(gen)),
		attribute.Int("nav.floor_id", n.floor.ID),
		attribute.Int("nav.steps", len(directions.Steps)),
		attribute.Float64("nav.meters", directions.Meters),
	)

	return Route{
		ID:         id,
		Generation: gen,
		Start:      start,
		End:        end,
		From:       from,
		To:         to,
		Plan:       plan,
		Directions: directions,
	}
}

// Resolve interprets s as a section ID, an "x,y" point or a search term
// that matches exactly one section by name or type.
func (n *Navigator) Resolve(s string) (geom.Point, *floor.Section, error) {
	if sec := n.floor.SectionByID(s); sec != nil {
		return sec.Center(), sec, nil
	}
	if p, err := ParsePoint(s); err == nil {
		return p, nil, nil
	}

	matches := n.floor.Search(s)
	switch len(matches) {
	case 0:
		return geom.Point{}, nil, fmt.Errorf("%w: %s", ErrUnknownSection, s)
	case 1:
		sec := n.floor.SectionByID(matches[0].ID)
		return sec.Center(), sec, nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return geom.Point{}, nil, fmt.Errorf("%w: %s matches %s", ErrAmbiguousSection, s, strings.Join(names, ", "))
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

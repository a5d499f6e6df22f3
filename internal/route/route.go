// Package route computes obstacle-clearing walking paths across a floor.
//
// A call rasterizes the obstacles, snaps the endpoints onto free cells,
// tries a straight line, falls back to A* and finally string-pulls the
// result. Routing never fails: when nothing better is available the caller
// gets a corner detour or a straight line.
package route

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/officenav/internal/geom"
	"github.com/samdwyer/officenav/internal/navgrid"
	"github.com/samdwyer/officenav/internal/search"
	"github.com/samdwyer/officenav/internal/telemetry"
)

const (
	// DefaultMetersPerPixel is used when a request carries no usable scale.
	DefaultMetersPerPixel = 0.1

	// ClearanceMeters is the margin kept between simplified segments and
	// obstacles. It is wider than navgrid.BufferMeters so that rounding
	// cell centres back to pixels cannot clip a corner.
	ClearanceMeters = 0.4
	// DetourMeters is how far the fallback corner sits off the obstacle.
	DetourMeters = 1.0
)

// Outcome records which stage produced a path.
type Outcome string

const (
	OutcomeDirect   Outcome = "direct"   // grid line of sight between endpoints
	OutcomeSearch   Outcome = "search"   // A* then simplification
	OutcomeDetour   Outcome = "detour"   // corner around the first blocking obstacle
	OutcomeStraight Outcome = "straight" // nothing worked, straight line
)

// Request describes one routing call. Obstacles are only read.
type Request struct {
	Start, End     geom.Point
	Obstacles      []geom.Rect
	Width, Height  float64
	MetersPerPixel float64 // <= 0 means DefaultMetersPerPixel
}

// Plan is the result of a routing call.
type Plan struct {
	Path     []geom.Point
	Outcome  Outcome
	CellSize float64
	Rows     int
	Cols     int
	Blocked  int // Occupied grid cells
	Expanded int // A* pops, zero when the search did not run
}

// Planner runs routing requests. The zero value is usable and rebuilds the
// occupancy grid on every call.
type Planner struct {
	tracer trace.Tracer
	cache  *gridCache
}

// Option configures a Planner.
type Option func(*Planner)

// WithTracer sets the tracer used for route spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Planner) {
		p.tracer = t
	}
}

// WithGridCache memoizes up to n occupancy grids keyed by obstacle set and
// floor dimensions. n <= 0 disables the cache.
func WithGridCache(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.cache = newGridCache(n)
		}
	}
}

// NewPlanner creates a planner.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPlanner = &Planner{}

// FindPath returns a walking path from start to end that avoids obstacles
// where it can. The path always has at least two points, starts exactly at
// start and ends exactly at end.
func FindPath(ctx context.Context, start, end geom.Point, obstacles []geom.Rect, width, height, metersPerPixel float64) []geom.Point {
	return defaultPlanner.FindPath(ctx, start, end, obstacles, width, height, metersPerPixel)
}

// FindPath is the Planner form of the package-level FindPath.
func (p *Planner) FindPath(ctx context.Context, start, end geom.Point, obstacles []geom.Rect, width, height, metersPerPixel float64) []geom.Point {
	return p.Plan(ctx, Request{
		Start:          start,
		End:            end,
		Obstacles:      obstacles,
		Width:          width,
		Height:         height,
		MetersPerPixel: metersPerPixel,
	}).Path
}

// Plan routes a request and reports how the path was obtained.
func (p *Planner) Plan(ctx context.Context, req Request) Plan {
	tracer := p.tracer
	if tracer == nil {
		tracer = telemetry.Tracer("route")
	}
	_, span := tracer.Start(ctx, "route.find_path")
	defer span.End()

	startTime := time.Now()
	plan := p.plan(req)

	span.SetAttributes(
		attribute.String("route.outcome", string(plan.Outcome)),
		attribute.Int("route.waypoints", len(plan.Path)),
		attribute.Int("route.obstacles", len(req.Obstacles)),
		attribute.Float64("route.cell_size", plan.CellSize),
		attribute.Int("route.grid_rows", plan.Rows),
		attribute.Int("route.grid_cols", plan.Cols),
		attribute.Int("route.blocked_cells", plan.Blocked),
		attribute.Int("route.expanded", plan.Expanded),
		attribute.Float64("route.length_px", geom.Length(plan.Path)),
		attribute.Int64("route.duration_us", time.Since(startTime).Microseconds()),
	)
	return plan
}

func (p *Planner) plan(req Request) Plan {
	mpp := req.MetersPerPixel
	if !(mpp > 0) || math.IsInf(mpp, 0) {
		mpp = DefaultMetersPerPixel
	}
	size := navgrid.CellSize(mpp)
	clearance := ClearanceMeters / mpp

	grid := p.grid(req.Obstacles, req.Width, req.Height, size, navgrid.BufferMeters/mpp)
	plan := Plan{CellSize: size, Rows: grid.Rows, Cols: grid.Cols, Blocked: grid.BlockedCount()}

	if grid.Rows == 0 || grid.Cols == 0 {
		plan.Path, plan.Outcome = straight(req.Start, req.End), OutcomeStraight
		return plan
	}

	from, _ := grid.Nearest(grid.CellOf(req.Start))
	to, _ := grid.Nearest(grid.CellOf(req.End))

	if grid.LineOfSight(from, to) {
		plan.Path, plan.Outcome = straight(req.Start, req.End), OutcomeDirect
		return plan
	}

	res, ok := search.Search(grid, from, to)
	plan.Expanded = res.Expanded
	if ok {
		path := toWorld(grid, res.Cells, req.Start, req.End)
		plan.Path, plan.Outcome = Simplify(path, req.Obstacles, clearance), OutcomeSearch
		return plan
	}

	plan.Path = Detour(req.Start, req.End, req.Obstacles, DetourMeters/mpp)
	plan.Outcome = OutcomeDetour
	if len(plan.Path) == 2 {
		plan.Outcome = OutcomeStraight
	}
	return plan
}

func (p *Planner) grid(obstacles []geom.Rect, width, height, size, buffer float64) *navgrid.Grid {
	if p.cache == nil {
		return navgrid.Build(obstacles, width, height, size, buffer)
	}
	key := gridKey(obstacles, width, height, size, buffer)
	if g, ok := p.cache.get(key); ok {
		return g
	}
	g := navgrid.Build(obstacles, width, height, size, buffer)
	p.cache.put(key, g)
	return g
}

// toWorld maps cells to their centres and pins the ends to the caller's
// unsnapped points.
func toWorld(g *navgrid.Grid, cells []navgrid.Cell, start, end geom.Point) []geom.Point {
	if len(cells) < 2 {
		return straight(start, end)
	}
	path := make([]geom.Point, len(cells))
	for i, c := range cells {
		path[i] = g.Center(c)
	}
	path[0] = start
	path[len(path)-1] = end
	return path
}

func straight(start, end geom.Point) []geom.Point {
	return []geom.Point{start, end}
}

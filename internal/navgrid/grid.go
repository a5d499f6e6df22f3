// Package navgrid rasterizes rectangular obstacles into an occupancy grid
// and answers the cell-level queries the route search needs.
package navgrid

import (
	"math"

	"github.com/samdwyer/officenav/internal/geom"
)

const (
	// CellMeters is the nominal edge length of one grid cell.
	CellMeters = 0.5
	// MinCellSize is the smallest cell edge in pixels.
	MinCellSize = 4
	// BufferMeters is the clearance painted around every obstacle.
	BufferMeters = 0.3

	// MaxCells caps the grid area. Larger maps get an empty grid.
	MaxCells = 1 << 22

	// maxSnapRadius bounds the ring search in Nearest.
	maxSnapRadius = 10
)

// Cell addresses one grid cell.
type Cell struct {
	Col, Row int
}

// Grid is a row-major occupancy grid. A true entry is blocked.
type Grid struct {
	Rows, Cols int
	Size       float64 // Cell edge in pixels
	blocked    []bool
}

// CellSize returns the cell edge in pixels for the given scale.
func CellSize(metersPerPixel float64) float64 {
	return math.Max(MinCellSize, math.Round(CellMeters/metersPerPixel))
}

// New creates an empty grid covering width x height pixels. A degenerate
// map, or one that would exceed MaxCells, has no rows or columns.
func New(width, height, size float64) *Grid {
	rows := cellCount(height, size)
	cols := cellCount(width, size)
	if rows == 0 || cols == 0 || float64(rows)*float64(cols) > MaxCells {
		rows, cols = 0, 0
	}
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		Size:    size,
		blocked: make([]bool, rows*cols),
	}
}

func cellCount(extent, size float64) int {
	n := math.Ceil(extent / size)
	if !(n > 0) || n > MaxCells {
		return 0
	}
	return int(n)
}

// Build rasterizes obstacles grown by buffer pixels into a new grid.
// Overlapping obstacles simply OR together; obstacles entirely outside the
// map leave no mark.
func Build(obstacles []geom.Rect, width, height, size, buffer float64) *Grid {
	g := New(width, height, size)
	for _, o := range obstacles {
		g.Mark(o.Expand(buffer))
	}
	return g
}

// Mark blocks every cell overlapped by r.
func (g *Grid) Mark(r geom.Rect) {
	minCol := max(g.index(r.X), 0)
	maxCol := min(g.index(r.X+r.Width), g.Cols-1)
	minRow := max(g.index(r.Y), 0)
	maxRow := min(g.index(r.Y+r.Height), g.Rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			g.blocked[row*g.Cols+col] = true
		}
	}
}

// index maps a pixel coordinate to an unclamped cell index.
func (g *Grid) index(v float64) int {
	f := math.Floor(v / g.Size)
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Blocked reports whether c is occupied. Cells off the grid are blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Row*g.Cols+c.Col]
}

// Free reports whether c is on the grid and unoccupied.
func (g *Grid) Free(c Cell) bool {
	return !g.Blocked(c)
}

// BlockedCount returns the number of occupied cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// CellOf returns the cell containing p, clamped onto the grid.
func (g *Grid) CellOf(p geom.Point) Cell {
	return Cell{
		Col: clamp(g.index(p.X), 0, g.Cols-1),
		Row: clamp(g.index(p.Y), 0, g.Rows-1),
	}
}

// Center returns the pixel position of the centre of c.
func (g *Grid) Center(c Cell) geom.Point {
	half := g.Size / 2
	return geom.Point{
		X: float64(c.Col)*g.Size + half,
		Y: float64(c.Row)*g.Size + half,
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

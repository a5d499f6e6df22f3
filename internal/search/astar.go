// Package search runs A* over a navgrid occupancy grid.
package search

import (
	"container/heap"
	"math"

	"github.com/samdwyer/officenav/internal/navgrid"
)

// neighbours lists the 8-connected moves in expansion order.
var neighbours = [8]navgrid.Cell{
	{Col: 0, Row: -1}, // N
	{Col: 0, Row: 1},  // S
	{Col: 1, Row: 0},  // E
	{Col: -1, Row: 0}, // W
	{Col: -1, Row: -1},
	{Col: 1, Row: -1},
	{Col: -1, Row: 1},
	{Col: 1, Row: 1},
}

// Result is a successful search.
type Result struct {
	Cells    []navgrid.Cell // Start to goal inclusive
	Cost     float64        // Path cost in pixels
	Expanded int            // Nodes popped from the open set
}

// node is one arena entry. parent is an arena index, -1 for the root.
type node struct {
	cell    navgrid.Cell
	g, h, f float64
	parent  int
	seq     int
	heapIdx int
	closed  bool
}

// Search finds the cheapest 8-connected path from start to goal, using
// Euclidean step cost and heuristic. It reports false when the open set is
// exhausted before the goal is popped. Ties on f go to the node inserted
// first, so identical inputs always produce identical paths.
func Search(g *navgrid.Grid, start, goal navgrid.Cell) (Result, bool) {
	s := newSearcher(g)
	return s.run(start, goal)
}

type searcher struct {
	grid  *navgrid.Grid
	arena []node
	index []int // cell -> arena index + 1, 0 when unseen
	open  openSet
}

func newSearcher(g *navgrid.Grid) *searcher {
	s := &searcher{
		grid:  g,
		arena: make([]node, 0, 256),
		index: make([]int, g.Rows*g.Cols),
	}
	s.open.s = s
	return s
}

func (s *searcher) run(start, goal navgrid.Cell) (Result, bool) {
	s.push(start, 0, s.dist(start, goal), -1)

	limit := max(s.grid.Rows*s.grid.Cols, 1)
	expanded := 0

	for s.open.Len() > 0 && expanded < limit {
		cur := heap.Pop(&s.open).(int)
		expanded++

		if s.arena[cur].cell == goal {
			return Result{
				Cells:    s.reconstruct(cur),
				Cost:     s.arena[cur].g,
				Expanded: expanded,
			}, true
		}
		s.arena[cur].closed = true

		for _, d := range neighbours {
			c := s.arena[cur].cell
			next := navgrid.Cell{Col: c.Col + d.Col, Row: c.Row + d.Row}
			if !s.grid.Free(next) {
				continue
			}
			// A diagonal step may not squeeze past a blocked corner.
			if d.Col != 0 && d.Row != 0 &&
				(s.grid.Blocked(navgrid.Cell{Col: next.Col, Row: c.Row}) ||
					s.grid.Blocked(navgrid.Cell{Col: c.Col, Row: next.Row})) {
				continue
			}

			tentative := s.arena[cur].g + s.dist(c, next)
			idx := s.lookup(next)
			switch {
			case idx < 0:
				s.push(next, tentative, s.dist(next, goal), cur)
			case s.arena[idx].closed:
				// settled
			case tentative < s.arena[idx].g:
				n := &s.arena[idx]
				n.g = tentative
				n.f = tentative + n.h
				n.parent = cur
				heap.Fix(&s.open, n.heapIdx)
			}
		}
	}

	return Result{Expanded: expanded}, false
}

func (s *searcher) push(c navgrid.Cell, g, h float64, parent int) {
	idx := len(s.arena)
	s.arena = append(s.arena, node{
		cell:   c,
		g:      g,
		h:      h,
		f:      g + h,
		parent: parent,
		seq:    idx,
	})
	if s.grid.InBounds(c) {
		s.index[c.Row*s.grid.Cols+c.Col] = idx + 1
	}
	heap.Push(&s.open, idx)
}

func (s *searcher) lookup(c navgrid.Cell) int {
	return s.index[c.Row*s.grid.Cols+c.Col] - 1
}

// dist is the Euclidean distance between cell centres in pixels.
func (s *searcher) dist(a, b navgrid.Cell) float64 {
	return math.Hypot(float64(b.Col-a.Col), float64(b.Row-a.Row)) * s.grid.Size
}

// reconstruct follows parent links from the goal back to the root.
func (s *searcher) reconstruct(goal int) []navgrid.Cell {
	n := 0
	for i := goal; i >= 0; i = s.arena[i].parent {
		n++
	}
	cells := make([]navgrid.Cell, n)
	for i := goal; i >= 0; i = s.arena[i].parent {
		n--
		cells[n] = s.arena[i].cell
	}
	return cells
}

// openSet is a binary heap of arena indices ordered by (f, seq).
type openSet struct {
	s     *searcher
	items []int
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	a, b := &o.s.arena[o.items[i]], &o.s.arena[o.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (o *openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.s.arena[o.items[i]].heapIdx = i
	o.s.arena[o.items[j]].heapIdx = j
}

func (o *openSet) Push(x any) {
	idx := x.(int)
	o.s.arena[idx].heapIdx = len(o.items)
	o.items = append(o.items, idx)
}

func (o *openSet) Pop() any {
	old := o.items
	n := len(old)
	idx := old[n-1]
	o.items = old[:n-1]
	o.s.arena[idx].heapIdx = -1
	return idx
}

package search

import (
	"math"
	"testing"

	"github.com/samdwyer/officenav/internal/geom"
	"github.com/samdwyer/officenav/internal/navgrid"
)

func cell(col, row int) navgrid.Cell {
	return navgrid.Cell{Col: col, Row: row}
}

func TestSearchOpenGridIsStraight(t *testing.T) {
	g := navgrid.New(100, 100, 5)

	res, ok := Search(g, cell(0, 0), cell(10, 0))
	if !ok {
		t.Fatal("Expected a path on an empty grid")
	}
	if len(res.Cells) != 11 {
		t.Errorf("Expected 11 cells, got %d", len(res.Cells))
	}
	if math.Abs(res.Cost-50) > 1e-9 {
		t.Errorf("Expected cost 50, got %v", res.Cost)
	}
}

func TestSearchDiagonalCost(t *testing.T) {
	g := navgrid.New(100, 100, 5)

	res, ok := Search(g, cell(0, 0), cell(4, 4))
	if !ok {
		t.Fatal("Expected a path")
	}
	want := 4 * math.Sqrt2 * 5
	if math.Abs(res.Cost-want) > 1e-9 {
		t.Errorf("Expected cost %v, got %v", want, res.Cost)
	}
	if len(res.Cells) != 5 {
		t.Errorf("Diagonal path should take 5 cells, got %d", len(res.Cells))
	}
}

func TestSearchSameCell(t *testing.T) {
	g := navgrid.New(50, 50, 5)

	res, ok := Search(g, cell(3, 3), cell(3, 3))
	if !ok || len(res.Cells) != 1 {
		t.Errorf("Start == goal should yield a single cell, got %v ok=%v", res.Cells, ok)
	}
}

func TestSearchRoutesAroundWall(t *testing.T) {
	// Wall across columns 9..10 from the top down to row 14 of 20.
	g := navgrid.Build([]geom.Rect{{X: 45, Y: 0, Width: 5, Height: 70}}, 100, 100, 5, 0)

	res, ok := Search(g, cell(2, 2), cell(17, 2))
	if !ok {
		t.Fatal("Expected a path around the wall")
	}

	for i, c := range res.Cells {
		if g.Blocked(c) {
			t.Errorf("Path cell %d %+v is blocked", i, c)
		}
		if i > 0 {
			prev := res.Cells[i-1]
			if abs(c.Col-prev.Col) > 1 || abs(c.Row-prev.Row) > 1 {
				t.Errorf("Cells %d and %d are not adjacent: %+v %+v", i-1, i, prev, c)
			}
		}
	}
	if res.Cells[0] != cell(2, 2) || res.Cells[len(res.Cells)-1] != cell(17, 2) {
		t.Errorf("Path should run start to goal, got %+v .. %+v", res.Cells[0], res.Cells[len(res.Cells)-1])
	}
}

func TestSearchDoesNotCutCorners(t *testing.T) {
	g := navgrid.New(100, 100, 5)
	g.Mark(geom.Rect{X: 27, Y: 22}) // blocks cell (5, 4) only

	res, ok := Search(g, cell(4, 4), cell(5, 5))
	if !ok {
		t.Fatal("Expected a path")
	}
	if len(res.Cells) != 3 {
		t.Fatalf("Expected to step around the blocked corner in 3 cells, got %+v", res.Cells)
	}
	if res.Cells[1] != cell(4, 5) {
		t.Errorf("Expected to pass through (4, 5), got %+v", res.Cells[1])
	}
}

func TestSearchDiagonalsKeepSidesFree(t *testing.T) {
	g := navgrid.Build([]geom.Rect{
		{X: 22, Y: 13, Width: 31, Height: 17},
		{X: 61, Y: 48, Width: 9, Height: 33},
		{X: 12, Y: 57, Width: 27, Height: 8},
	}, 100, 100, 5, 1.5)

	res, ok := Search(g, cell(1, 1), cell(18, 18))
	if !ok {
		t.Fatal("Expected a path")
	}
	for i := 1; i < len(res.Cells); i++ {
		prev, c := res.Cells[i-1], res.Cells[i]
		if prev.Col == c.Col || prev.Row == c.Row {
			continue
		}
		if g.Blocked(cell(c.Col, prev.Row)) || g.Blocked(cell(prev.Col, c.Row)) {
			t.Errorf("Diagonal step %+v -> %+v passes a blocked corner", prev, c)
		}
	}
}

func TestSearchExhausted(t *testing.T) {
	// Goal boxed in completely.
	g := navgrid.New(100, 100, 5)
	g.Mark(geom.Rect{X: 50, Y: 50, Width: 15, Height: 0.1})
	g.Mark(geom.Rect{X: 50, Y: 60, Width: 15, Height: 0.1})
	g.Mark(geom.Rect{X: 50, Y: 50, Width: 0.1, Height: 10})
	g.Mark(geom.Rect{X: 60, Y: 50, Width: 0.1, Height: 10})

	res, ok := Search(g, cell(0, 0), cell(11, 11))
	if ok {
		t.Fatalf("Expected failure, got path of %d cells", len(res.Cells))
	}
	if res.Expanded == 0 {
		t.Error("Search should report expanded nodes even on failure")
	}
}

func TestSearchBlockedGoal(t *testing.T) {
	g := navgrid.Build([]geom.Rect{{X: 50, Y: 50, Width: 0}}, 100, 100, 5, 0)

	if _, ok := Search(g, cell(0, 0), cell(10, 10)); ok {
		t.Error("A blocked goal can never be reached")
	}
}

func TestSearchDeterministic(t *testing.T) {
	g := navgrid.Build([]geom.Rect{
		{X: 30, Y: 10, Width: 20, Height: 50},
		{X: 60, Y: 40, Width: 20, Height: 50},
	}, 120, 120, 5, 2)

	first, ok := Search(g, cell(1, 1), cell(22, 22))
	if !ok {
		t.Fatal("Expected a path")
	}
	for i := 0; i < 10; i++ {
		again, _ := Search(g, cell(1, 1), cell(22, 22))
		if len(again.Cells) != len(first.Cells) {
			t.Fatalf("Run %d: length %d != %d", i, len(again.Cells), len(first.Cells))
		}
		for j := range again.Cells {
			if again.Cells[j] != first.Cells[j] {
				t.Fatalf("Run %d: cell %d differs: %+v != %+v", i, j, again.Cells[j], first.Cells[j])
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

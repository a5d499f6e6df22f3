package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/officenav/internal/floor"
	"github.com/samdwyer/officenav/internal/nav"
)

func TestRunAndPrint(t *testing.T) {
	n := nav.New(floor.MustLoad("ground_floor"), nav.DefaultConfig())

	r, err := run(context.Background(), n, "1", "8")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.From == nil || r.To == nil {
		t.Fatal("Section IDs should route between sections")
	}

	var buf bytes.Buffer
	printRoute(&buf, r)
	out := buf.String()
	for _, want := range []string{"Start your journey", "Arrive at destination", "on foot"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestRunWithPoints(t *testing.T) {
	n := nav.New(floor.MustLoad("ground_floor"), nav.DefaultConfig())

	r, err := run(context.Background(), n, "20,20", "8")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.From != nil {
		t.Error("A point outside every section should not report one")
	}
	if path := r.Path(); path[0].X != 20 || path[0].Y != 20 {
		t.Errorf("Expected route to start at (20, 20), got %v", path[0])
	}

	if _, err := run(context.Background(), n, "nowhere", "8"); err == nil {
		t.Error("Expected an error for an unknown start")
	}
}

func TestRunWithNames(t *testing.T) {
	n := nav.New(floor.MustLoad("ground_floor"), nav.DefaultConfig())

	r, err := run(context.Background(), n, "reception", "Storage")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.From == nil || r.From.ID != "1" || r.To == nil || r.To.ID != "6" {
		t.Errorf("Expected Reception to Storage, got %+v -> %+v", r.From, r.To)
	}

	if _, err := run(context.Background(), n, "office", "8"); !errors.Is(err, nav.ErrAmbiguousSection) {
		t.Errorf("Expected an ambiguous start error, got %v", err)
	}
}

func TestListSections(t *testing.T) {
	var buf bytes.Buffer
	listSections(&buf, floor.MustLoad("first_floor"))

	if !strings.Contains(buf.String(), "Board Room") {
		t.Errorf("Expected Board Room in listing:\n%s", buf.String())
	}
}

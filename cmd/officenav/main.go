// Package main is the entry point for officenav, a command that routes
// between two points or rooms of an office floor and prints walking
// directions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/officenav/internal/floor"
	"github.com/samdwyer/officenav/internal/landmark"
	"github.com/samdwyer/officenav/internal/nav"
	"github.com/samdwyer/officenav/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := nav.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flag.StringVar(&cfg.FloorFile, "floor", cfg.FloorFile, "floor layout file (.json, .yaml)")
	flag.StringVar(&cfg.FloorName, "bundled", cfg.FloorName, "bundled floor name: "+strings.Join(floor.Names(), ", "))
	flag.Float64Var(&cfg.MetersPerPixel, "mpp", cfg.MetersPerPixel, "meters per pixel override")
	flag.BoolVar(&cfg.Compact, "compact", cfg.Compact, "list fewer landmarks per step")
	flag.BoolVar(&cfg.Doorways, "doorways", cfg.Doorways, "route between room doorways instead of centres")
	from := flag.String("from", "", "start: section ID, x,y or name search")
	to := flag.String("to", "", "destination: section ID, x,y or name search")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	f, err := cfg.LoadFloor()
	if err != nil {
		log.Fatalf("Failed to load floor: %v", err)
	}
	n := nav.New(f, cfg)

	if *from == "" || *to == "" {
		listSections(os.Stdout, f)
		return
	}

	r, err := run(ctx, n, *from, *to)
	if err != nil {
		log.Fatalf("Routing failed: %v", err)
	}
	printRoute(os.Stdout, r)
}

// run routes between two sections, or between points when either end
// is not a section.
func run(ctx context.Context, n *nav.Navigator, from, to string) (nav.Route, error) {
	start, fromSec, err := n.Resolve(from)
	if err != nil {
		return nav.Route{}, err
	}
	end, toSec, err := n.Resolve(to)
	if err != nil {
		return nav.Route{}, err
	}
	if fromSec != nil && toSec != nil {
		return n.RouteBetween(ctx, fromSec.ID, toSec.ID)
	}
	return n.Route(ctx, start, end), nil
}

func listSections(w io.Writer, f *floor.Floor) {
	fmt.Fprintf(w, "%s (%gx%g px, %g m/px)\n", f.Name, f.Width, f.Height, f.MetersPerPixel)
	for _, s := range f.Sections {
		fmt.Fprintf(w, "  %-4s %-20s %-10s %v\n", s.ID, s.Name, s.Type, s.Center())
	}
}

func printRoute(w io.Writer, r nav.Route) {
	fmt.Fprintf(w, "Route %s (%s, %d waypoints)\n", r.ID, r.Plan.Outcome, len(r.Path()))
	for _, p := range r.Path() {
		fmt.Fprintf(w, "  %v\n", p)
	}

	d := r.Directions
	fmt.Fprintf(w, "\n%d steps, %s, about %ds on foot\n", len(d.Steps), landmark.FormatDistance(d.Meters), d.Seconds)
	for _, s := range d.Steps {
		fmt.Fprintf(w, "%2d. %s, continue for %s\n", s.Number, s.Instruction, s.Distance)
		if len(s.Near) > 0 {
			fmt.Fprintf(w, "    near: %s\n", names(s.Near))
		}
		if len(s.Passing) > 0 {
			fmt.Fprintf(w, "    passing: %s\n", names(s.Passing))
		}
	}
}

func names(sections []floor.Section) string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Name
	}
	return strings.Join(out, ", ")
}

// setupOTelEnv maps our Honeycomb variables onto the standard OTEL ones.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", telemetry.DefaultEndpoint)
	}

	// The .env file may hold an unexpanded reference, so build the header here
	apiKey := os.Getenv("HONEYCOMB_OFFICENAV_API_KEY")
	dataset := os.Getenv("HONEYCOMB_OFFICENAV_DATASET")
	if dataset == "" {
		dataset = "officenav"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

package landmark

import (
	"math"

	"github.com/samdwyer/officenav/internal/floor"
	"github.com/samdwyer/officenav/internal/geom"
)

const (
	// NearRadius is how close, in pixels, a section centroid must be to a
	// waypoint to be mentioned at that step.
	NearRadius = 60
	// PassingRadius is the radius used when sampling along a step.
	PassingRadius = 40
	// straightTolerance is the heading change, in radians, still read as
	// going straight on.
	straightTolerance = 0.3

	// DefaultLimit caps the landmarks listed per step.
	DefaultLimit = 3
	// CompactLimit is the cap used for small displays.
	CompactLimit = 2
)

// Turn is the manoeuvre at the start of a step.
type Turn int

const (
	TurnStart Turn = iota
	TurnStraight
	TurnLeft
	TurnRight
	TurnArrive
)

// String returns the instruction wording for t.
func (t Turn) String() string {
	switch t {
	case TurnStart:
		return "Start your journey"
	case TurnStraight:
		return "Continue straight"
	case TurnLeft:
		return "Turn left"
	case TurnRight:
		return "Turn right"
	case TurnArrive:
		return "Arrive at destination"
	default:
		return "unknown"
	}
}

// Step is one leg of the route, from a waypoint to the next.
type Step struct {
	Number      int
	Turn        Turn
	Instruction string
	Meters      float64
	Distance    string          // Meters formatted for display
	Near        []floor.Section // Around the waypoint the step starts from
	Passing     []floor.Section // Along the leg, excluding Near
}

// Directions is the full set of steps for a path.
type Directions struct {
	Steps   []Step
	Meters  float64
	Seconds int
}

// Describe builds turn-by-turn directions for path. limit caps the landmarks
// kept per step; values <= 0 mean DefaultLimit. Paths shorter than two
// points produce no steps.
func Describe(path []geom.Point, sections []floor.Section, metersPerPixel float64, limit int) Directions {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(path) < 2 {
		return Directions{}
	}

	steps := make([]Step, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		cur, next := path[i], path[i+1]

		near := Near(cur, sections, NearRadius)
		passing := AlongSegment(cur, next, sections, PassingRadius)

		var turn Turn
		switch {
		case i == 0:
			turn = TurnStart
		case i == len(path)-2:
			turn = TurnArrive
		default:
			turn = classifyTurn(path[i-1], cur, next)
		}

		instruction := turn.String()
		if (turn == TurnStraight || turn == TurnLeft || turn == TurnRight) && len(near) > 0 {
			instruction += " at " + near[0].Name
		}

		meters := PixelDistanceMeters(cur, next, metersPerPixel)
		steps = append(steps, Step{
			Number:      i + 1,
			Turn:        turn,
			Instruction: instruction,
			Meters:      meters,
			Distance:    FormatDistance(meters),
			Near:        truncate(near, limit),
			Passing:     exclude(truncate(passing, limit), near),
		})
	}

	total := PathMeters(path, metersPerPixel)
	return Directions{
		Steps:   steps,
		Meters:  total,
		Seconds: WalkingSeconds(total),
	}
}

// classifyTurn compares the heading into cur with the heading out of it.
// Screen y grows downward, so a positive change is clockwise, a right turn.
func classifyTurn(prev, cur, next geom.Point) Turn {
	in := math.Atan2(cur.Y-prev.Y, cur.X-prev.X)
	out := math.Atan2(next.Y-cur.Y, next.X-cur.X)
	diff := math.Remainder(out-in, 2*math.Pi)

	switch {
	case math.Abs(diff) < straightTolerance:
		return TurnStraight
	case diff > 0:
		return TurnRight
	default:
		return TurnLeft
	}
}

func truncate(sections []floor.Section, n int) []floor.Section {
	if len(sections) > n {
		return sections[:n]
	}
	return sections
}

func exclude(sections, drop []floor.Section) []floor.Section {
	var out []floor.Section
	for _, s := range sections {
		found := false
		for _, d := range drop {
			if d.ID == s.ID {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}

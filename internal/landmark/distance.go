package landmark

import (
	"math"
	"strconv"

	"github.com/samdwyer/officenav/internal/geom"
)

// WalkingSpeed is the assumed average walking speed in metres per second.
const WalkingSpeed = 1.4

// PixelDistanceMeters converts the pixel distance between a and b to metres.
func PixelDistanceMeters(a, b geom.Point, metersPerPixel float64) float64 {
	return a.Dist(b) * metersPerPixel
}

// PathMeters returns the length of path in metres.
func PathMeters(path []geom.Point, metersPerPixel float64) float64 {
	return geom.Length(path) * metersPerPixel
}

// WalkingSeconds estimates walking time for a distance, rounded up to
// whole seconds.
func WalkingSeconds(meters float64) int {
	return int(math.Ceil(meters / WalkingSpeed))
}

// FormatDistance renders a distance for display: centimetres below one
// metre, metres to one decimal below a kilometre, kilometres above.
func FormatDistance(meters float64) string {
	switch {
	case meters < 1:
		return formatNumber(math.Round(meters*100)) + " cm"
	case meters < 1000:
		return formatNumber(math.Round(meters*10)/10) + " m"
	default:
		return formatNumber(math.Round(meters/100)/10) + " km"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

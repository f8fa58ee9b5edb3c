// ABOUTME: Utilization level classification for occupancy readings
// ABOUTME: Maps percentage, occupancy and capacity to one of four severity levels

package utilization

import (
	"fmt"
	"math"
)

// Thresholds for percentage-based classification. Ties fall into the
// higher-severity level.
const (
	HighThreshold     = 90.0
	ElevatedThreshold = 70.0

	// MaxFillWidth caps the rendered bar width
	MaxFillWidth = 100.0
)

// Level is the color category of a utilization reading
type Level int

const (
	Healthy Level = iota
	Elevated
	High
	OverCapacity
)

// String returns the wire name of the level
func (l Level) String() string {
	switch l {
	case Healthy:
		return "healthy"
	case Elevated:
		return "elevated"
	case High:
		return "high"
	case OverCapacity:
		return "over_capacity"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize by name
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Reading is one utilization observation. Values are taken as-is and never
// validated; Utilization may disagree with Occupancy/Capacity (rounding).
type Reading struct {
	Utilization float64 `json:"utilization"`
	Occupancy   int     `json:"occupancy"`
	Capacity    int     `json:"capacity"`
}

// OverCapacity reports whether occupancy strictly exceeds capacity
func (r Reading) OverCapacity() bool {
	return r.Occupancy > r.Capacity
}

// Classify picks the level for a reading. Over-capacity is checked first and
// wins regardless of the percentage.
func Classify(r Reading) Level {
	switch {
	case r.OverCapacity():
		return OverCapacity
	case r.Utilization >= HighThreshold:
		return High
	case r.Utilization >= ElevatedThreshold:
		return Elevated
	default:
		return Healthy
	}
}

// FillWidth returns the bar fill percentage, capped at 100. Values below
// zero pass through unchanged.
func FillWidth(utilization float64) float64 {
	if utilization > MaxFillWidth {
		return MaxFillWidth
	}
	return utilization
}

// PercentOf derives a rounded percentage from occupancy and capacity.
// Zero capacity yields 0.
func PercentOf(occupancy, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return math.Round(float64(occupancy) / float64(capacity) * 100)
}

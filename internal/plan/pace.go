package plan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPace is returned when a pace string can't be parsed
var ErrInvalidPace = errors.New("invalid pace")

// Pace offsets relative to the week's interpolated pace, in seconds per km
const (
	easyOffset     = 60
	tempoOffset    = 15
	intervalOffset = -15
	recoveryOffset = 75
)

// maxPaceField mirrors the pace entry widget, which accepts 0-59 for both fields
const maxPaceField = 59

// Pace is a duration per kilometer
type Pace struct {
	Minutes int `json:"minutes" yaml:"minutes"`
	Seconds int `json:"seconds" yaml:"seconds"`
}

// PaceToSeconds returns the total seconds per km, floored at zero
func PaceToSeconds(p Pace) int {
	total := p.Minutes*60 + p.Seconds
	if total < 0 {
		return 0
	}
	return total
}

// SecondsToPace rounds to the nearest second and splits into minutes and seconds.
// Negative durations become 0:00.
func SecondsToPace(seconds float64) Pace {
	s := round(seconds)
	if s < 0 {
		s = 0
	}
	return Pace{Minutes: s / 60, Seconds: s % 60}
}

// Normalize carries out-of-range seconds into minutes and floors negative durations
func (p Pace) Normalize() Pace {
	return SecondsToPace(float64(PaceToSeconds(p)))
}

// String formats the pace as M:SS without a unit
func (p Pace) String() string {
	n := p.Normalize()
	return fmt.Sprintf("%d:%02d", n.Minutes, n.Seconds)
}

// IsZero reports whether the pace normalizes to 0:00
func (p Pace) IsZero() bool {
	return PaceToSeconds(p) == 0
}

// FormatPace renders a pace as "M:SS/km"
func FormatPace(p Pace) string {
	return p.String() + "/km"
}

// offsetPace shifts a pace by a number of seconds, clamping at zero
func offsetPace(p Pace, offset int) Pace {
	return SecondsToPace(float64(PaceToSeconds(p) + offset))
}

// EasyPace is the Zone 2 pace, ~60s slower than the base pace
func EasyPace(p Pace) string {
	return FormatPace(offsetPace(p, easyOffset))
}

// TempoPace is the threshold pace, ~15s slower than the base pace
func TempoPace(p Pace) string {
	return FormatPace(offsetPace(p, tempoOffset))
}

// IntervalPace is ~15s faster than the base pace
func IntervalPace(p Pace) string {
	return FormatPace(offsetPace(p, intervalOffset))
}

// ParsePace parses "M:SS" or "M" (an optional "/km" suffix is ignored).
// Numeric fields are clamped to 0-59, like the pace entry form.
func ParsePace(s string) (Pace, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/km")
	if s == "" {
		return Pace{}, fmt.Errorf("%w: empty", ErrInvalidPace)
	}

	minStr, secStr, hasSec := strings.Cut(s, ":")
	minutes, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return Pace{}, fmt.Errorf("%w: %q", ErrInvalidPace, s)
	}

	seconds := 0
	if hasSec {
		seconds, err = strconv.Atoi(strings.TrimSpace(secStr))
		if err != nil {
			return Pace{}, fmt.Errorf("%w: %q", ErrInvalidPace, s)
		}
	}

	return Pace{
		Minutes: clamp(minutes, 0, maxPaceField),
		Seconds: clamp(seconds, 0, maxPaceField),
	}, nil
}

// round rounds half toward positive infinity, so -0.5 becomes 0
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

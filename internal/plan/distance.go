package plan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDistance is returned when a race distance key isn't recognized
var ErrUnknownDistance = errors.New("unknown race distance")

// RaceDistance identifies a supported race
type RaceDistance string

const (
	Race5K   RaceDistance = "5k"
	Race10K  RaceDistance = "10k"
	RaceHalf RaceDistance = "half"
	RaceFull RaceDistance = "full"
)

// DistanceInfo holds the static metadata for a race distance
type DistanceInfo struct {
	Name  string  // "5K", "Half Marathon", ...
	Km    float64
	Miles float64
	Weeks int // total plan length
}

// distanceInfo is read-only after init
var distanceInfo = map[RaceDistance]DistanceInfo{
	Race5K:   {Name: "5K", Km: 5, Miles: 3.1, Weeks: 8},
	Race10K:  {Name: "10K", Km: 10, Miles: 6.2, Weeks: 10},
	RaceHalf: {Name: "Half Marathon", Km: 21.1, Miles: 13.1, Weeks: 12},
	RaceFull: {Name: "Marathon", Km: 42.2, Miles: 26.2, Weeks: 16},
}

// distanceOrder is the selector order, shortest first
var distanceOrder = []RaceDistance{Race5K, Race10K, RaceHalf, RaceFull}

// Distances returns all supported distances, shortest first
func Distances() []RaceDistance {
	out := make([]RaceDistance, len(distanceOrder))
	copy(out, distanceOrder)
	return out
}

// Info returns the metadata for d. Unknown distances return ok=false.
func (d RaceDistance) Info() (DistanceInfo, bool) {
	info, ok := distanceInfo[d]
	return info, ok
}

// Valid reports whether d is one of the supported distances
func (d RaceDistance) Valid() bool {
	_, ok := distanceInfo[d]
	return ok
}

// mustInfo is for callers that have already validated d
func (d RaceDistance) mustInfo() DistanceInfo {
	info, ok := distanceInfo[d]
	if !ok {
		panic(fmt.Sprintf("plan: unknown race distance %q", string(d)))
	}
	return info
}

// ParseDistance maps user input to a RaceDistance
func ParseDistance(s string) (RaceDistance, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "5k", "5km":
		return Race5K, nil
	case "10k", "10km":
		return Race10K, nil
	case "half", "half-marathon", "half marathon", "21k":
		return RaceHalf, nil
	case "full", "marathon", "42k":
		return RaceFull, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistance, s)
}

// FormatKm renders a kilometer value without trailing zeros, e.g. "5 km", "21.1 km"
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

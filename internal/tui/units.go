package tui

import (
	"fmt"

	"runner/internal/config"
)

const kmPerMile = 1.609344

// Units provides unit conversion and formatting based on user preferences.
// Plan paces are always per km; only weekly mileage follows the display unit.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatMileage formats a whole-km weekly total in the user's preferred unit
func (u Units) FormatMileage(km int) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f mi", float64(km)/kmPerMile)
	}
	return fmt.Sprintf("%d km", km)
}

// ConvertMileage converts km values for charting
func (u Units) ConvertMileage(km []float64) []float64 {
	if !u.IsMiles() {
		return km
	}
	converted := make([]float64, len(km))
	for i, v := range km {
		converted[i] = v / kmPerMile
	}
	return converted
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

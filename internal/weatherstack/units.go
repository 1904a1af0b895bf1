package weatherstack

import "strings"

type UnitSystem string

const (
	UnitsMetric     UnitSystem = "m"
	UnitsFahrenheit UnitSystem = "f"
	UnitsScientific UnitSystem = "s"
)

// ParseUnitSystem falls back to metric for anything it does not recognise.
func ParseUnitSystem(s string) UnitSystem {
	switch u := UnitSystem(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitsMetric, UnitsFahrenheit, UnitsScientific:
		return u
	default:
		return UnitsMetric
	}
}

// Label is the temperature unit shown next to values returned in this system.
func (u UnitSystem) Label() string {
	switch u {
	case UnitsFahrenheit:
		return "°F"
	case UnitsScientific:
		return "K"
	default:
		return "°C"
	}
}

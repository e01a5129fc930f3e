package almanac

// The energy-type resolver is a documented placeholder: a deterministic
// hash of the birth date and hour spread over the five type labels. It is
// not a bodygraph calculation and makes no claim to be one; it exists so
// the same birth data always yields the same label.

// energyTypes are the five categories, in fixed order.
var energyTypes = [5]string{
	"Manifestor",
	"Generator",
	"Manifesting Generator",
	"Projector",
	"Reflector",
}

// EnergyType derives the placeholder type label from a date and optional
// birth time. An unknown time contributes hour zero to the seed only; it
// never affects any other resolver.
func EnergyType(d Date, t *BirthTime) string {
	hour := 0
	if t != nil {
		hour = t.Hour
	}
	seed := JulianDayNumber(d.Year, d.Month, d.Day)*24 + hour
	// Multiplicative scramble so adjacent days don't walk the type list
	// in order.
	idx := ((seed*2654435761)%5 + 5) % 5
	return energyTypes[idx]
}

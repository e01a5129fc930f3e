package almanac

// Sign is a tropical zodiac sign.
type Sign string

// Signs in zodiacal order. Offsets into this cycle drive the
// secondary placements.
var signCycle = []Sign{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// fallbackSign is returned when a birth date cannot be parsed. This is an
// explicit documented fallback, not a silent zero value.
const fallbackSign = Sign("Aries")

// sunSignCutoffs is the fixed (month, last-day, sign) table. A date on or
// before the cutoff day of its month takes the cutoff's sign; a later date
// takes the next entry's sign.
var sunSignCutoffs = []struct {
	month int
	day   int
	sign  Sign
}{
	{1, 19, "Capricorn"},
	{2, 18, "Aquarius"},
	{3, 20, "Pisces"},
	{4, 19, "Aries"},
	{5, 20, "Taurus"},
	{6, 20, "Gemini"},
	{7, 22, "Cancer"},
	{8, 22, "Leo"},
	{9, 22, "Virgo"},
	{10, 22, "Libra"},
	{11, 21, "Scorpio"},
	{12, 21, "Sagittarius"},
}

// SunSign resolves the tropical sun sign for a date.
func SunSign(d Date) Sign {
	for i, c := range sunSignCutoffs {
		if d.Month != c.month {
			continue
		}
		if d.Day <= c.day {
			return c.sign
		}
		return sunSignCutoffs[(i+1)%len(sunSignCutoffs)].sign
	}
	return fallbackSign
}

// SunSignFromString parses a date string and resolves the sun sign,
// falling back to Aries when the date is unparseable.
func SunSignFromString(s string) Sign {
	d, ok := ParseDate(s)
	if !ok {
		return fallbackSign
	}
	return SunSign(d)
}

// Placement is a single symbolic point in a solar chart. Unknown is set
// when the placement needs a birth time that was not supplied.
type Placement struct {
	Sign    Sign
	Unknown bool
}

// SolarChart holds the sun sign and the secondary placements. The
// secondary placements are fixed angular offsets from the sun sign
// through the 12-sign cycle, a simplification that stands in for real
// ephemeris positions.
type SolarChart struct {
	Sun     Sign
	Moon    Placement // sun + 4
	Venus   Placement // sun + 1
	Mars    Placement // sun + 2
	Mercury Placement // sun + 3
	Rising  Placement // sun + hour/2; unknown without a birth time
}

// Chart computes the full solar chart. time is optional: when absent, the
// rising placement is marked unknown rather than assumed from hour zero.
func Chart(d Date, t *BirthTime) SolarChart {
	sun := SunSign(d)
	chart := SolarChart{
		Sun:     sun,
		Venus:   Placement{Sign: offsetSign(sun, 1)},
		Mars:    Placement{Sign: offsetSign(sun, 2)},
		Mercury: Placement{Sign: offsetSign(sun, 3)},
		Moon:    Placement{Sign: offsetSign(sun, 4)},
	}
	if t == nil {
		chart.Rising = Placement{Unknown: true}
	} else {
		chart.Rising = Placement{Sign: offsetSign(sun, t.Hour/2)}
	}
	return chart
}

// offsetSign advances a sign through the zodiacal cycle.
func offsetSign(s Sign, offset int) Sign {
	for i, c := range signCycle {
		if c == s {
			return signCycle[((i+offset)%12+12)%12]
		}
	}
	return s
}

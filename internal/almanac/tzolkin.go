package almanac

// TzolkinCorrelation is the fixed constant relating the Julian Day Number
// to the kin count. The resolver's own deterministic output is the
// contract here, not agreement with any particular Mayanist correlation.
const TzolkinCorrelation = 584283

// tzolkinDaySigns are the 20 day-sign names in cycle order.
var tzolkinDaySigns = [20]string{
	"Imix", "Ik", "Akbal", "Kan", "Chicchan",
	"Cimi", "Manik", "Lamat", "Muluc", "Oc",
	"Chuen", "Eb", "Ben", "Ix", "Men",
	"Cib", "Caban", "Etznab", "Cauac", "Ahau",
}

// TzolkinSignature is a position in the 260-day sacred calendar: one of
// 20 day-signs combined with one of 13 tones. The full cycle repeats
// exactly every 260 days.
type TzolkinSignature struct {
	DaySignIndex int    // 0-19
	DaySign      string
	Tone         int // 1-13
}

// Tzolkin resolves a date's position in the 260-day cycle.
func Tzolkin(d Date) TzolkinSignature {
	kin := JulianDayNumber(d.Year, d.Month, d.Day) - TzolkinCorrelation
	signIdx := ((kin % 20) + 20) % 20
	tone := ((kin%13)+13)%13 + 1
	return TzolkinSignature{
		DaySignIndex: signIdx,
		DaySign:      tzolkinDaySigns[signIdx],
		Tone:         tone,
	}
}

package almanac

import "fmt"

// Sexagenary tables: 12 animal branches and the element/polarity pattern
// of the 10 heavenly stems. Two consecutive stems share an element,
// alternating yang then yin.
var (
	sexagenaryAnimals = [12]string{
		"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
		"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
	}
	stemElements = [10]string{
		"Wood", "Wood", "Fire", "Fire", "Earth", "Earth",
		"Metal", "Metal", "Water", "Water",
	}
	stemPolarities = [10]string{
		"Yang", "Yin", "Yang", "Yin", "Yang", "Yin",
		"Yang", "Yin", "Yang", "Yin",
	}
)

// lunarNewYearDay approximates the day-of-month on which the Chinese New
// Year falls, per Gregorian year. Only consulted for February dates; years
// outside the table default to day 15.
var lunarNewYearDay = map[int]int{
	1980: 16, 1981: 5, 1982: 25, 1983: 13, 1984: 2,
	1985: 20, 1986: 9, 1987: 29, 1988: 17, 1989: 6,
	1990: 27, 1991: 15, 1992: 4, 1993: 23, 1994: 10,
	1995: 31, 1996: 19, 1997: 7, 1998: 28, 1999: 16,
	2000: 5, 2001: 24, 2002: 12, 2003: 1, 2004: 22,
	2005: 9, 2006: 29, 2007: 18, 2008: 7, 2009: 26,
	2010: 14, 2011: 3, 2012: 23, 2013: 10, 2014: 31,
	2015: 19, 2016: 8, 2017: 28, 2018: 16, 2019: 5,
	2020: 25, 2021: 12, 2022: 1, 2023: 22, 2024: 10,
	2025: 29, 2026: 17, 2027: 6, 2028: 26, 2029: 13,
	2030: 3,
}

const defaultLunarNewYearDay = 15

// SexagenaryYear is a position in the 60-year cycle: an animal branch
// combined with a stem's element and polarity.
type SexagenaryYear struct {
	LunarYear   int
	AnimalIndex int // 0-11
	Animal      string
	Stem        int // 0-9
	Element     string
	Polarity    string
}

// Label formats the year in the conventional "Animal (Element Polarity)" form.
func (y SexagenaryYear) Label() string {
	return fmt.Sprintf("%s (%s %s)", y.Animal, y.Element, y.Polarity)
}

// Sexagenary resolves a Gregorian date to its sexagenary year, assigning
// the lunar year with an approximate new-year cutover.
//
// January dates are assigned to the previous lunar year unconditionally,
// with no day-of-month check. This mirrors the reference behavior exactly,
// including for dates after an early new year; do not "fix" it.
func Sexagenary(d Date) SexagenaryYear {
	lunarYear := d.Year
	switch {
	case d.Month == 1:
		lunarYear = d.Year - 1
	case d.Month == 2:
		cny, ok := lunarNewYearDay[d.Year]
		if !ok {
			cny = defaultLunarNewYearDay
		}
		if d.Day < cny {
			lunarYear = d.Year - 1
		}
	}

	animalIdx := ((lunarYear-4)%12 + 12) % 12
	cycleIdx := ((lunarYear-4)%60 + 60) % 60
	stem := cycleIdx % 10

	return SexagenaryYear{
		LunarYear:   lunarYear,
		AnimalIndex: animalIdx,
		Animal:      sexagenaryAnimals[animalIdx],
		Stem:        stem,
		Element:     stemElements[stem],
		Polarity:    stemPolarities[stem],
	}
}

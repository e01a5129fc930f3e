package almanac

// JulianDayNumber converts a proleptic Gregorian calendar date to a Julian
// Day Number using pure integer arithmetic. The JDN is the shared integer
// timeline underneath the cyclic calendar resolvers.
func JulianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

package almanac

import "testing"

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2012, 12, 21, 2456283},
		{2000, 1, 1, 2451545},
		{1970, 1, 1, 2440588},
		{1984, 12, 13, 2446048},
	}
	for _, tc := range tests {
		if got := JulianDayNumber(tc.year, tc.month, tc.day); got != tc.want {
			t.Errorf("JDN(%d-%02d-%02d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
		}
	}
}

func TestJulianDayNumber_Consecutive(t *testing.T) {
	// Crossing a month and a leap-day boundary advances by exactly one.
	if JulianDayNumber(2024, 2, 29)-JulianDayNumber(2024, 2, 28) != 1 {
		t.Error("leap day is not one JDN after Feb 28")
	}
	if JulianDayNumber(2024, 3, 1)-JulianDayNumber(2024, 2, 29) != 1 {
		t.Error("Mar 1 is not one JDN after leap day")
	}
}

package almanac

import "testing"

func TestSexagenary_FebruaryCutover(t *testing.T) {
	// 2023-02-01: the table holds 22 for 2023, so day 1 < 22 assigns the
	// previous lunar year. (2022-4) mod 12 = 2 -> Tiger; cycle 38 -> stem 8
	// -> Water Yang.
	y := Sexagenary(Date{2023, 2, 1})
	if y.LunarYear != 2022 {
		t.Errorf("lunar year = %d, want 2022", y.LunarYear)
	}
	if y.AnimalIndex != 2 || y.Animal != "Tiger" {
		t.Errorf("animal = %d/%s, want 2/Tiger", y.AnimalIndex, y.Animal)
	}
	if y.Stem != 8 || y.Element != "Water" || y.Polarity != "Yang" {
		t.Errorf("stem = %d %s %s, want 8 Water Yang", y.Stem, y.Element, y.Polarity)
	}
	if y.Label() != "Tiger (Water Yang)" {
		t.Errorf("label = %q, want %q", y.Label(), "Tiger (Water Yang)")
	}
}

func TestSexagenary_JanuaryIgnoresDay(t *testing.T) {
	// January dates roll back one lunar year unconditionally, even after
	// an early new year has already passed. Fixed reference behavior.
	y := Sexagenary(Date{2023, 1, 25})
	if y.LunarYear != 2022 {
		t.Errorf("lunar year = %d, want 2022", y.LunarYear)
	}
	if y.Animal != "Tiger" {
		t.Errorf("animal = %s, want Tiger", y.Animal)
	}
}

func TestSexagenary_AfterFebruary(t *testing.T) {
	// Month > 2 always takes the calendar year. 1984 is Wood Rat.
	y := Sexagenary(Date{1984, 3, 1})
	if y.LunarYear != 1984 {
		t.Errorf("lunar year = %d, want 1984", y.LunarYear)
	}
	if y.Animal != "Rat" || y.Element != "Wood" || y.Polarity != "Yang" {
		t.Errorf("got %s (%s %s), want Rat (Wood Yang)", y.Animal, y.Element, y.Polarity)
	}
}

func TestSexagenary_FebruaryOnOrAfterCutover(t *testing.T) {
	// 2022 table value is 1, so every February 2022 date is lunar 2022.
	y := Sexagenary(Date{2022, 2, 1})
	if y.LunarYear != 2022 {
		t.Errorf("lunar year = %d, want 2022", y.LunarYear)
	}
}

func TestSexagenary_YearOutsideTable(t *testing.T) {
	// Outside the table February falls back to day 15.
	before := Sexagenary(Date{1950, 2, 14})
	after := Sexagenary(Date{1950, 2, 15})
	if before.LunarYear != 1949 {
		t.Errorf("before cutover lunar year = %d, want 1949", before.LunarYear)
	}
	if after.LunarYear != 1950 {
		t.Errorf("after cutover lunar year = %d, want 1950", after.LunarYear)
	}
}

func TestSexagenary_StemElementPattern(t *testing.T) {
	// Consecutive stems pair on an element, alternating yang then yin.
	for lunarYear := 1984; lunarYear < 1994; lunarYear += 2 {
		a := Sexagenary(Date{lunarYear, 6, 1})
		b := Sexagenary(Date{lunarYear + 1, 6, 1})
		if a.Element != b.Element {
			t.Errorf("%d/%d: elements %s/%s, want equal", lunarYear, lunarYear+1, a.Element, b.Element)
		}
		if a.Polarity != "Yang" || b.Polarity != "Yin" {
			t.Errorf("%d/%d: polarities %s/%s, want Yang/Yin", lunarYear, lunarYear+1, a.Polarity, b.Polarity)
		}
	}
}

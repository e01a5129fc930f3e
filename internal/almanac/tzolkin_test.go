package almanac

import "testing"

func TestTzolkin_ReferenceDate(t *testing.T) {
	// 2012-12-21: JDN 2456283, kin 1872000 = 20*13*7200 exactly,
	// so day-sign index 0 (Imix) and tone 1.
	sig := Tzolkin(Date{2012, 12, 21})
	if sig.DaySignIndex != 0 {
		t.Errorf("day-sign index = %d, want 0", sig.DaySignIndex)
	}
	if sig.DaySign != "Imix" {
		t.Errorf("day-sign = %s, want Imix", sig.DaySign)
	}
	if sig.Tone != 1 {
		t.Errorf("tone = %d, want 1", sig.Tone)
	}
}

func TestTzolkin_260DayPeriod(t *testing.T) {
	// Any two dates exactly 260 days apart share a signature.
	// 2012-12-21 + 260 days = 2013-09-07.
	a := Tzolkin(Date{2012, 12, 21})
	b := Tzolkin(Date{2013, 9, 7})
	if a != b {
		t.Errorf("signatures differ across one full cycle: %+v vs %+v", a, b)
	}
}

func TestTzolkin_Ranges(t *testing.T) {
	for _, d := range []Date{{1900, 1, 1}, {1984, 12, 13}, {2023, 6, 15}, {2100, 12, 31}} {
		sig := Tzolkin(d)
		if sig.DaySignIndex < 0 || sig.DaySignIndex > 19 {
			t.Errorf("%v: day-sign index %d out of [0,19]", d, sig.DaySignIndex)
		}
		if sig.Tone < 1 || sig.Tone > 13 {
			t.Errorf("%v: tone %d out of [1,13]", d, sig.Tone)
		}
	}
}

func TestTzolkin_Idempotent(t *testing.T) {
	d := Date{1984, 12, 13}
	if Tzolkin(d) != Tzolkin(d) {
		t.Error("identical input produced different output")
	}
}

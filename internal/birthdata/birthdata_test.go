package birthdata

import (
	"testing"
	"time"

	"github.com/mirit/psyche/internal/almanac"
	"github.com/mirit/psyche/internal/catalog"
)

func TestPrefillRoundTrip(t *testing.T) {
	p := Profile{Date: "1984-12-13", Time: "14:30", Place: "Lisbon"}
	got := FromAnswers(PrefillAnswers(p))
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestPrefill_EmptyTimeBecomesUnknown(t *testing.T) {
	answers := PrefillAnswers(Profile{Date: "1984-12-13"})
	for _, a := range answers {
		if a.QuestionID == catalog.BirthTimeQuestionID && a.Text != "unknown" {
			t.Errorf("time answer = %q, want unknown sentinel", a.Text)
		}
	}
}

func TestResolve_FullReading(t *testing.T) {
	r := Resolve(Profile{Date: "1984-12-13", Time: "14:30"})
	if r.Solar.Sun != "Sagittarius" {
		t.Errorf("sun = %s, want Sagittarius", r.Solar.Sun)
	}
	if r.Solar.Rising.Unknown {
		t.Error("rising unknown despite a birth time")
	}
	if r.LifePath != 11 {
		t.Errorf("life path = %d, want 11", r.LifePath)
	}
	if r.Sexagenary.Animal != "Rat" {
		t.Errorf("animal = %s, want Rat (1984)", r.Sexagenary.Animal)
	}
	if r.EnergyType == "" {
		t.Error("energy type empty")
	}
}

func TestResolve_UnknownTimeSuppressesRising(t *testing.T) {
	for _, sentinel := range []string{"", "unknown", "unk", "?"} {
		r := Resolve(Profile{Date: "1984-12-13", Time: sentinel})
		if !r.Solar.Rising.Unknown {
			t.Errorf("time %q: rising resolved, want unknown", sentinel)
		}
	}
}

func TestResolve_UnparseableDateFallsBack(t *testing.T) {
	r := Resolve(Profile{Date: "not-a-date"})

	if r.Solar.Sun != "Aries" {
		t.Errorf("sun = %s, want the Aries fallback", r.Solar.Sun)
	}

	// The sexagenary fallback is today's date, so the lunar year tracks
	// the current year (minus one around the new-year cutover), never zero.
	now := time.Now()
	want := almanac.Sexagenary(almanac.Date{
		Year: now.Year(), Month: int(now.Month()), Day: now.Day(),
	})
	if r.Sexagenary.LunarYear != want.LunarYear {
		t.Errorf("lunar year = %d, want %d", r.Sexagenary.LunarYear, want.LunarYear)
	}
	if r.Sexagenary.Animal != want.Animal {
		t.Errorf("animal = %s, want %s", r.Sexagenary.Animal, want.Animal)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	p := Profile{Date: "2023-02-01", Time: "unknown"}
	if Resolve(p) != Resolve(p) {
		t.Error("identical input produced different readings")
	}
}

package almanac

import "testing"

func TestParseDate_Layouts(t *testing.T) {
	want := Date{1984, 12, 13}
	for _, s := range []string{"1984-12-13", "1984/12/13", "13/12/1984", "December 13, 1984", "13 December 1984"} {
		got, ok := ParseDate(s)
		if !ok || got != want {
			t.Errorf("ParseDate(%q) = %v, %v; want %v, true", s, got, ok, want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "soon", "1984-13-45"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) succeeded, want failure", s)
		}
	}
}

func TestParseBirthTime_UnknownSentinels(t *testing.T) {
	// Sentinels mean "not known", never hour zero.
	for _, s := range []string{"", "unknown", "Unknown", "UNK", "?", "  unknown  "} {
		if _, ok := ParseBirthTime(s); ok {
			t.Errorf("ParseBirthTime(%q) parsed, want unknown", s)
		}
	}
}

func TestParseBirthTime_Formats(t *testing.T) {
	tests := []struct {
		in   string
		want BirthTime
	}{
		{"14:30", BirthTime{14, 30}},
		{"09:05", BirthTime{9, 5}},
		{"3:04pm", BirthTime{15, 4}},
		{"11PM", BirthTime{23, 0}},
		{"7", BirthTime{7, 0}},
	}
	for _, tc := range tests {
		got, ok := ParseBirthTime(tc.in)
		if !ok || got != tc.want {
			t.Errorf("ParseBirthTime(%q) = %v, %v; want %v, true", tc.in, got, ok, tc.want)
		}
	}
}

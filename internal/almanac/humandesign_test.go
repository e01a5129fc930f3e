package almanac

import "testing"

func TestEnergyType_Deterministic(t *testing.T) {
	d := Date{1984, 12, 13}
	bt := &BirthTime{Hour: 14}
	first := EnergyType(d, bt)
	for i := 0; i < 10; i++ {
		if got := EnergyType(d, bt); got != first {
			t.Fatalf("EnergyType drifted: %s vs %s", got, first)
		}
	}
}

func TestEnergyType_KnownLabel(t *testing.T) {
	labels := map[string]bool{}
	for _, l := range energyTypes {
		labels[l] = true
	}
	for day := 1; day <= 28; day++ {
		got := EnergyType(Date{1990, 5, day}, nil)
		if !labels[got] {
			t.Errorf("EnergyType = %q, not a known label", got)
		}
	}
}

func TestEnergyType_UnknownTimeIsHourZero(t *testing.T) {
	// Absent birth time seeds with hour zero for this resolver only.
	d := Date{1984, 12, 13}
	if EnergyType(d, nil) != EnergyType(d, &BirthTime{Hour: 0}) {
		t.Error("nil time and hour zero disagree")
	}
}

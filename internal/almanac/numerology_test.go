package almanac

import "testing"

func TestReduce(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0},
		{9, 9},
		{10, 1},
		{29, 11}, // 2+9 = 11, master halts reduction
		{38, 11},
		{48, 3}, // 4+8 = 12 -> 1+2 = 3
		{11, 11},
		{22, 22},
		{33, 33},
	}
	for _, tc := range tests {
		if got := Reduce(tc.in); got != tc.want {
			t.Errorf("Reduce(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLifePath_MasterNumberPreserved(t *testing.T) {
	// 1984-12-13: month 12->3, day 13->4, year 1+9+8+4=22 (kept).
	// 3+4+22 = 29 -> 2+9 = 11, halt at the master number.
	if got := LifePath(Date{1984, 12, 13}); got != 11 {
		t.Errorf("LifePath = %d, want 11", got)
	}
}

func TestLifePath_PlainReduction(t *testing.T) {
	// 1990-06-15: month 6, day 6, year 1+9+9+0=19->10->1; 6+6+1=13->4.
	if got := LifePath(Date{1990, 6, 15}); got != 4 {
		t.Errorf("LifePath = %d, want 4", got)
	}
}

func TestLifePath_Range(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true,
		6: true, 7: true, 8: true, 9: true, 11: true, 22: true, 33: true}
	for year := 1900; year <= 2030; year += 7 {
		for month := 1; month <= 12; month++ {
			got := LifePath(Date{year, month, (month*3)%28 + 1})
			if !valid[got] {
				t.Fatalf("LifePath(%d-%d) = %d, not a valid life path value", year, month, got)
			}
		}
	}
}

func TestLifePath_ZeroMapsToOne(t *testing.T) {
	// The zero date reduces to 0, which is mapped to 1.
	if got := LifePath(Date{}); got != 1 {
		t.Errorf("LifePath(zero) = %d, want 1", got)
	}
}

package scoring

import "testing"

func TestEstimatePercentile_Center(t *testing.T) {
	if got := EstimatePercentile(50); got != 50 {
		t.Errorf("EstimatePercentile(50) = %d, want 50", got)
	}
}

func TestEstimatePercentile_Clamped(t *testing.T) {
	if got := EstimatePercentile(0); got != 1 {
		t.Errorf("EstimatePercentile(0) = %d, want 1", got)
	}
	if got := EstimatePercentile(100); got != 99 {
		t.Errorf("EstimatePercentile(100) = %d, want 99", got)
	}
}

func TestEstimatePercentile_Monotonic(t *testing.T) {
	prev := EstimatePercentile(0)
	for score := 1; score <= 100; score++ {
		cur := EstimatePercentile(score)
		if cur < prev {
			t.Fatalf("percentile decreased at score %d: %d -> %d", score, prev, cur)
		}
		prev = cur
	}
}

func TestRawMeanToTScore(t *testing.T) {
	tests := []struct {
		rawMean  float64
		scaleMax int
		want     int
	}{
		{3.0, 5, 50},  // scale midpoint
		{5.0, 5, 62},  // 50 + 10*(5-3)/(5/3) = 62
		{1.0, 5, 38},  // 50 - 12
		{4.0, 7, 50},  // 7-point midpoint
	}
	for _, tc := range tests {
		if got := RawMeanToTScore(tc.rawMean, tc.scaleMax); got != tc.want {
			t.Errorf("RawMeanToTScore(%v, %d) = %d, want %d", tc.rawMean, tc.scaleMax, got, tc.want)
		}
	}
}

package scoring

import "math"

// EstimatePercentile maps a normalized 0-100 score to an estimated
// percentile using a logistic curve centered at 50, clamped to [1,99].
// Monotonic and stateless; a score of 50 maps to the 50th percentile.
func EstimatePercentile(score int) int {
	pct := 100 / (1 + math.Exp(-1.7*(float64(score)-50)/16))
	return clampInt(int(math.Round(pct)), 1, 99)
}

// RawMeanToTScore converts a raw rating-scale mean to a T-score (mean 50,
// SD 10) using a fixed approximation of the scale's distribution:
// scaleMean = (scaleMax+1)/2 and scaleSD = scaleMax/3.
func RawMeanToTScore(rawMean float64, scaleMax int) int {
	scaleMean := float64(scaleMax+1) / 2
	scaleSD := float64(scaleMax) / 3
	return int(math.Round(50 + 10*(rawMean-scaleMean)/scaleSD))
}

package service

import "math"

// ScorePercentage converts answer counts into an integer percentage 0-100.
// The denominator is floored at one so an attempt finished with no submitted
// answers scores 0 instead of dividing by zero.
func ScorePercentage(correct, total int64) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(correct) * 100.0 / float64(total)))
}

package service

import "testing"

func TestScorePercentage(t *testing.T) {
	cases := []struct {
		name    string
		correct int64
		total   int64
		want    int
	}{
		{"no answers", 0, 0, 0},
		{"all wrong", 0, 5, 0},
		{"all correct", 5, 5, 100},
		{"half", 1, 2, 50},
		{"two thirds rounds up", 2, 3, 67},
		{"one third rounds down", 1, 3, 33},
		{"one of eight", 1, 8, 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScorePercentage(tc.correct, tc.total); got != tc.want {
				t.Errorf("ScorePercentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
			}
		})
	}
}

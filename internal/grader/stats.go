package grader

import (
	"golang.org/x/exp/slices"
)

// Stats is a pure aggregation over a completed batch. Percentages are in
// [0, 100].
type Stats struct {
	TotalStudents   int
	TotalTests      int
	AverageScorePct float64
	MedianScorePct  float64
	Errors          int
}

func CalcStats(batch *BatchResult) Stats {
	stats := Stats{
		TotalStudents: len(batch.Results),
		TotalTests:    len(batch.Declarations),
		Errors:        len(batch.Errors),
	}
	if len(batch.Results) == 0 {
		return stats
	}

	percentages := make([]float64, 0, len(batch.Results))
	sum := 0.0
	for _, result := range batch.Results {
		pct := result.Percentage()
		percentages = append(percentages, pct)
		sum += pct
	}
	stats.AverageScorePct = sum / float64(len(percentages))

	slices.Sort(percentages)
	mid := len(percentages) / 2
	if len(percentages)%2 == 0 {
		stats.MedianScorePct = (percentages[mid-1] + percentages[mid]) / 2.0
	} else {
		stats.MedianScorePct = percentages[mid]
	}

	return stats
}

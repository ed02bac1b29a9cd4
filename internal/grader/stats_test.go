package grader

import (
	"math"
	"testing"

	"github.com/classgrade/classgrade/internal/models"
)

func makeResult(login string, awarded, available int) *models.StudentResult {
	return &models.StudentResult{
		Login:          login,
		TotalAwarded:   awarded,
		TotalAvailable: available,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalcStats(t *testing.T) {
	batch := &BatchResult{
		Declarations: twoTests,
		Results: []*models.StudentResult{
			makeResult("a", 15, 15), // 100%
			makeResult("b", 6, 15),  // 40%
			makeResult("c", 3, 15),  // 20%
		},
		Errors: []StudentError{{Login: "d"}},
	}

	stats := CalcStats(batch)
	if stats.TotalStudents != 3 || stats.TotalTests != 2 || stats.Errors != 1 {
		t.Fatalf("Invalid counters: %+v", stats)
	}
	if !almostEqual(stats.AverageScorePct, (100.0+40.0+20.0)/3.0) {
		t.Fatalf("Invalid average: %f", stats.AverageScorePct)
	}
	if !almostEqual(stats.MedianScorePct, 40.0) {
		t.Fatalf("Invalid median: %f", stats.MedianScorePct)
	}
}

func TestCalcStatsEvenCount(t *testing.T) {
	batch := &BatchResult{
		Results: []*models.StudentResult{
			makeResult("a", 0, 10),  // 0%
			makeResult("b", 10, 10), // 100%
			makeResult("c", 5, 10),  // 50%
			makeResult("d", 9, 10),  // 90%
		},
	}

	stats := CalcStats(batch)
	if !almostEqual(stats.MedianScorePct, 70.0) {
		t.Fatalf("Invalid median: %f, expected 70", stats.MedianScorePct)
	}
}

func TestCalcStatsEmptyBatch(t *testing.T) {
	stats := CalcStats(&BatchResult{})
	if stats.TotalStudents != 0 || stats.AverageScorePct != 0 || stats.MedianScorePct != 0 {
		t.Fatalf("Invalid empty stats: %+v", stats)
	}
}

func TestCalcStatsZeroAvailable(t *testing.T) {
	stats := CalcStats(&BatchResult{
		Results: []*models.StudentResult{makeResult("a", 0, 0)},
	})
	if stats.AverageScorePct != 0 {
		t.Fatalf("Division by zero leaked into average: %f", stats.AverageScorePct)
	}
}

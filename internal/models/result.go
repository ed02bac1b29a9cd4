package models

import (
	"time"
)

type TestResult struct {
	Name            string
	PointsAwarded   int
	PointsAvailable int
	Passed          bool
}

// StudentResult is one student's resolved grade. Tests are keyed by
// declaration name and ordered by Order, which repeats the declaration
// extraction order. TotalAwarded may be a log-derived override rather
// than the sum of the per-test points.
type StudentResult struct {
	Login        string
	RepoURL      string
	RunTimestamp time.Time

	Tests map[string]TestResult
	Order []string

	TotalAwarded   int
	TotalAvailable int
}

func (r *StudentResult) Percentage() float64 {
	if r.TotalAvailable == 0 {
		return 0
	}
	return float64(r.TotalAwarded) / float64(r.TotalAvailable) * 100.0
}

type LateGradingResult struct {
	Login   string
	RepoURL string

	OnTime *StudentResult
	Late   *StudentResult

	FinalScore int
}

func (r *LateGradingResult) FinalPercentage() float64 {
	if r.OnTime == nil || r.OnTime.TotalAvailable == 0 {
		return 0
	}
	return float64(r.FinalScore) / float64(r.OnTime.TotalAvailable) * 100.0
}

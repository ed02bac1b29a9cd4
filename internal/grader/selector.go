package grader

import (
	"time"

	"github.com/pkg/errors"

	"github.com/classgrade/classgrade/internal/models"
)

var ErrNoCompletedRun = errors.New("No completed workflow run found")

// runLess orders two completed runs by createdAt, run ID breaking ties.
func runLess(left, right *models.WorkflowRun) bool {
	if left.CreatedAt.Equal(right.CreatedAt) {
		return left.ID < right.ID
	}
	return left.CreatedAt.Before(right.CreatedAt)
}

// SelectRun picks the single run representing the graded submission.
// Without a deadline the latest completed run wins. With a deadline the
// listing is already restricted to runs at/after the cutoff, and the
// earliest of those wins: late grading targets the first late attempt,
// not the final one.
func SelectRun(runs []models.WorkflowRun, deadline *time.Time) (*models.WorkflowRun, error) {
	var selected *models.WorkflowRun
	for i := range runs {
		run := &runs[i]
		if !run.Completed() {
			continue
		}
		if selected == nil {
			selected = run
			continue
		}
		if deadline != nil {
			if runLess(run, selected) {
				selected = run
			}
		} else {
			if runLess(selected, run) {
				selected = run
			}
		}
	}

	if selected == nil {
		return nil, ErrNoCompletedRun
	}
	return selected, nil
}

package grader

import (
	"github.com/classgrade/classgrade/internal/models"
)

// ResolveSteps maps the autograding job's step conclusions onto the test
// declarations. Step status is binary: success earns the full max score,
// any other conclusion (failure, skipped, cancelled, step absent) earns
// zero. Returns the per-test results keyed by declaration name and the
// provisional total.
func ResolveSteps(declarations []models.TestDeclaration, gradingJob *models.Job) (map[string]models.TestResult, int) {
	conclusions := make(map[string]models.StepConclusion, len(gradingJob.Steps))
	for _, step := range gradingJob.Steps {
		conclusions[step.Name] = step.Conclusion
	}

	tests := make(map[string]models.TestResult, len(declarations))
	total := 0
	for _, declaration := range declarations {
		awarded := 0
		passed := false
		if conclusions[declaration.Name] == models.StepConclusionSuccess {
			awarded = declaration.MaxScore
			passed = true
		}
		tests[declaration.Name] = models.TestResult{
			Name:            declaration.Name,
			PointsAwarded:   awarded,
			PointsAvailable: declaration.MaxScore,
			Passed:          passed,
		}
		total += awarded
	}

	return tests, total
}

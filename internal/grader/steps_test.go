package grader

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/classgrade/classgrade/internal/models"
)

var twoTests = []models.TestDeclaration{
	{Name: "t1", ID: "t-1", MaxScore: 5},
	{Name: "t2", ID: "t-2", MaxScore: 10},
}

func TestResolveStepsBinaryScoring(t *testing.T) {
	gradingJob := &models.Job{
		ID:   1,
		Name: "run-autograding-tests",
		Steps: []models.JobStep{
			{Name: "t1", Conclusion: models.StepConclusionSuccess},
			{Name: "t2", Conclusion: models.StepConclusionFailure},
		},
	}

	tests, total := ResolveSteps(twoTests, gradingJob)
	if total != 5 {
		t.Fatalf("Invalid provisional total: %d, expected 5", total)
	}

	expected := map[string]models.TestResult{
		"t1": {Name: "t1", PointsAwarded: 5, PointsAvailable: 5, Passed: true},
		"t2": {Name: "t2", PointsAwarded: 0, PointsAvailable: 10, Passed: false},
	}
	if diff := cmp.Diff(expected, tests); diff != "" {
		t.Fatalf("Unexpected test results (-want +got):\n%s", diff)
	}
}

func TestResolveStepsFailClosed(t *testing.T) {
	conclusions := []models.StepConclusion{
		models.StepConclusionSkipped,
		models.StepConclusionCancelled,
		"",
	}

	for _, conclusion := range conclusions {
		gradingJob := &models.Job{
			Steps: []models.JobStep{
				{Name: "t1", Conclusion: conclusion},
				// t2 has no step at all
			},
		}
		tests, total := ResolveSteps(twoTests, gradingJob)
		if total != 0 {
			t.Fatalf("Conclusion %q: invalid total %d, expected 0", conclusion, total)
		}
		for name, test := range tests {
			if test.Passed || test.PointsAwarded != 0 {
				t.Fatalf("Conclusion %q: test %s not failed closed: %+v", conclusion, name, test)
			}
		}
	}
}

func TestResolveStepsPointsWithinBounds(t *testing.T) {
	gradingJob := &models.Job{
		Steps: []models.JobStep{
			{Name: "t1", Conclusion: models.StepConclusionSuccess},
			{Name: "t2", Conclusion: models.StepConclusionSuccess},
		},
	}

	tests, _ := ResolveSteps(twoTests, gradingJob)
	for name, test := range tests {
		if test.PointsAwarded < 0 || test.PointsAwarded > test.PointsAvailable {
			t.Fatalf("Test %s out of bounds: %d/%d", name, test.PointsAwarded, test.PointsAvailable)
		}
	}
}

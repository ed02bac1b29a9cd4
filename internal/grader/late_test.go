package grader

import (
	"context"
	"testing"
	"time"

	"github.com/classgrade/classgrade/internal/models"
)

func TestLatePolicyFinal(t *testing.T) {
	policy, err := NewLatePolicy(0.2)
	if err != nil {
		t.Fatalf("Failed to build policy: %v", err)
	}

	cases := []struct {
		name   string
		onTime int
		late   int
		want   int
	}{
		{"late did not improve", 15, 10, 15},
		{"late improved", 5, 15, 12},
		{"equal scores", 10, 10, 10},
		{"zero on-time", 0, 10, 8},
		{"rounding up", 0, 13, 10}, // 13 * 0.8 = 10.4
	}

	for _, tc := range cases {
		if got := policy.Final(tc.onTime, tc.late); got != tc.want {
			t.Errorf("%s: Final(%d, %d) = %d, expected %d", tc.name, tc.onTime, tc.late, got, tc.want)
		}
	}
}

func TestLatePolicyNoPenaltyWhenNotImproved(t *testing.T) {
	policy, _ := NewLatePolicy(0.5)
	for late := 0; late <= 10; late++ {
		if got := policy.Final(10, late); got != 10 {
			t.Fatalf("Final(10, %d) = %d, expected exactly 10", late, got)
		}
	}
}

func TestNewLatePolicyValidatesFraction(t *testing.T) {
	for _, penalty := range []float64{-0.1, 1.1} {
		if _, err := NewLatePolicy(penalty); err == nil {
			t.Fatalf("Penalty %f accepted", penalty)
		}
	}
	for _, penalty := range []float64{0, 0.5, 1} {
		if _, err := NewLatePolicy(penalty); err != nil {
			t.Fatalf("Penalty %f rejected: %v", penalty, err)
		}
	}
}

func TestResolveLateGrading(t *testing.T) {
	fake := newFakeServices()
	// A second alice run after the late cutoff that fixes t2: success on
	// both steps, log confirms the full score.
	fake.runs["course/hw1-alice"] = append(fake.runs["course/hw1-alice"],
		makeRun(13, "2024-01-06T00:00:00Z", models.RunConclusionSuccess))
	fake.jobs["course/hw1-alice/13"] = []models.Job{{
		ID:   113,
		Name: "run-autograding-tests",
		Steps: []models.JobStep{
			{Name: "t1", Conclusion: models.StepConclusionSuccess},
			{Name: "t2", Conclusion: models.StepConclusionSuccess},
		},
	}}
	fake.logs[113] = "Points 15/15"
	// The on-time pass selects alice's first run at/after the cutoff.
	fake.jobs["course/hw1-alice/11"] = []models.Job{{
		ID:   111,
		Name: "run-autograding-tests",
		Steps: []models.JobStep{
			{Name: "t1", Conclusion: models.StepConclusionSuccess},
			{Name: "t2", Conclusion: models.StepConclusionFailure},
		},
	}}
	fake.logs[111] = "no totals here"

	resolver := newTestResolver(fake)
	policy, _ := NewLatePolicy(0.2)

	onTime := mustParse(time.Parse(time.RFC3339, "2024-01-01T00:00:00Z"))
	late := mustParse(time.Parse(time.RFC3339, "2024-01-06T00:00:00Z"))

	combined, err := resolver.ResolveLateGrading(context.Background(), 1, &onTime, &late, policy, nil)
	if err != nil {
		t.Fatalf("Failed to resolve late grading: %v", err)
	}

	// Bob has no run at/after the late cutoff, so he only appears in the
	// on-time pass and is dropped from the combined output.
	if len(combined.Results) != 1 {
		t.Fatalf("Invalid number of combined results: %d, expected 1", len(combined.Results))
	}

	alice := combined.Results[0]
	if alice.Login != "alice" {
		t.Fatalf("Invalid combined login: %s", alice.Login)
	}
	if alice.OnTime.TotalAwarded != 5 {
		t.Fatalf("Invalid on-time total: %d, expected 5", alice.OnTime.TotalAwarded)
	}
	if alice.OnTime.TotalAwarded >= alice.Late.TotalAwarded {
		t.Fatalf("Expected the late attempt to improve: %d vs %d",
			alice.OnTime.TotalAwarded, alice.Late.TotalAwarded)
	}
	if alice.Late.TotalAwarded != 15 {
		t.Fatalf("Invalid late total: %d, expected 15", alice.Late.TotalAwarded)
	}
	if alice.FinalScore != 12 {
		t.Fatalf("Invalid final score: %d, expected 12 (15 with 0.2 penalty)", alice.FinalScore)
	}
}

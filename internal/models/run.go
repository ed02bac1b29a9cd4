package models

import (
	"time"
)

const (
	RunConclusionSuccess   = "success"
	RunConclusionFailure   = "failure"
	RunConclusionCancelled = "cancelled"
	RunConclusionTimedOut  = "timed_out"
)

type RunConclusion = string

// WorkflowRun is a single CI run of a student repository. Conclusion is
// empty until the run is terminal.
type WorkflowRun struct {
	ID         int64
	CreatedAt  time.Time
	Conclusion RunConclusion
}

func (r *WorkflowRun) Completed() bool {
	return r.Conclusion != ""
}

const (
	StepConclusionSuccess   = "success"
	StepConclusionFailure   = "failure"
	StepConclusionSkipped   = "skipped"
	StepConclusionCancelled = "cancelled"
)

type StepConclusion = string

type JobStep struct {
	Name       string
	Number     int
	Conclusion StepConclusion
}

type Job struct {
	ID    int64
	Name  string
	Steps []JobStep
}

// Package grader resolves CI outcomes of student repositories into
// auditable per-assignment grades.
package grader

import (
	"context"

	"go.uber.org/zap"

	"github.com/classgrade/classgrade/internal/config"
	"github.com/classgrade/classgrade/internal/github"
	"github.com/classgrade/classgrade/internal/models"
)

// RunsService is the slice of the GitHub API the resolver reads runs,
// jobs, logs and files through.
type RunsService interface {
	ListWorkflowRuns(ctx context.Context, owner, repo string, opts github.ListRunsOptions) ([]models.WorkflowRun, error)
	ListJobs(ctx context.Context, owner, repo string, runID int64) ([]models.Job, error)
	GetJobLog(ctx context.Context, owner, repo string, jobID int64) (string, error)
	GetFileContents(ctx context.Context, owner, repo, path string) (string, error)
}

// RosterService provides the assignment and its accepted submissions.
type RosterService interface {
	GetAssignment(ctx context.Context, assignmentID int64) (*models.Assignment, error)
	ListAcceptedSubmissions(ctx context.Context, assignmentID int64) ([]models.AcceptedSubmission, error)
}

type Resolver struct {
	config *config.Config
	logger *zap.Logger
	runs   RunsService
	roster RosterService
}

func NewResolver(conf *config.Config, logger *zap.Logger, runs RunsService, roster RosterService) *Resolver {
	return &Resolver{
		config: conf,
		logger: logger.Named("grader"),
		runs:   runs,
		roster: roster,
	}
}

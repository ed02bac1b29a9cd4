package grader

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	lf "github.com/classgrade/classgrade/internal/logfield"
	"github.com/classgrade/classgrade/internal/models"
	"github.com/classgrade/classgrade/internal/workflow"
)

var (
	ErrEmptyRoster     = errors.New("Assignment has no accepted submissions")
	ErrNoReferenceRepo = errors.New("Assignment has no starter or reference repository")
)

// ProgressObserver is invoked before each student resolution. index is
// 1-based; total is the roster size.
type ProgressObserver func(index, total int, login string)

type StudentError struct {
	Login string
	Err   error
}

// BatchResult is a completed resolution pass over a whole roster.
// Failed students are recorded in Errors and excluded from Results.
type BatchResult struct {
	BatchID      string
	Assignment   *models.Assignment
	Declarations []models.TestDeclaration
	Results      []*models.StudentResult
	Errors       []StudentError
}

// ResolveAssignment grades every accepted submission of the assignment
// against the optional deadline. Per-student failures never abort the
// batch; the batch itself fails only on an empty roster or when test
// declarations cannot be extracted.
func (r *Resolver) ResolveAssignment(
	ctx context.Context,
	assignmentID int64,
	deadline *time.Time,
	progress ProgressObserver,
) (*BatchResult, error) {
	assignment, err := r.roster.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch assignment")
	}

	submissions, err := r.roster.ListAcceptedSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch accepted submissions")
	}
	if len(submissions) == 0 {
		return nil, ErrEmptyRoster
	}

	declarations, err := r.extractDeclarations(ctx, assignment, submissions)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to extract test declarations")
	}

	batch := &BatchResult{
		BatchID:      uuid.New().String(),
		Assignment:   assignment,
		Declarations: declarations,
		Results:      make([]*models.StudentResult, 0, len(submissions)),
	}
	log := r.logger.With(lf.BatchID(batch.BatchID), lf.AssignmentID(assignmentID))
	log.Info("Starting batch resolution",
		zap.Int("num_students", len(submissions)),
		zap.Int("num_tests", len(declarations)),
		zap.Timep("deadline", deadline),
	)

	completed := atomic.NewInt64(0)
	for i := range submissions {
		// Cancellation granularity is after the current student.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		submission := &submissions[i]
		login := submission.Login()
		if progress != nil {
			progress(i+1, len(submissions), login)
		}

		result, err := r.ResolveStudent(ctx, submission, deadline, declarations)
		if err != nil {
			log.Warn("Failed to resolve student", lf.StudentLogin(login), zap.Error(err))
			batch.Errors = append(batch.Errors, StudentError{Login: login, Err: err})
			continue
		}

		batch.Results = append(batch.Results, result)
		completed.Inc()
	}

	log.Info("Finished batch resolution",
		zap.Int64("num_scored", completed.Load()),
		zap.Int("num_errors", len(batch.Errors)),
	)
	return batch, nil
}

// extractDeclarations reads the grading workflow from the assignment's
// starter repository, falling back to the first roster entry's repository
// when the assignment has no starter repo. The declaration list is shared
// read-only by every student in the batch.
func (r *Resolver) extractDeclarations(
	ctx context.Context,
	assignment *models.Assignment,
	submissions []models.AcceptedSubmission,
) ([]models.TestDeclaration, error) {
	var owner, repo string
	var err error

	if assignment.StarterCodeURL != "" {
		owner, repo, err = splitRepoURL(assignment.StarterCodeURL)
		if err != nil {
			return nil, err
		}
	} else {
		if len(submissions) == 0 {
			return nil, ErrNoReferenceRepo
		}
		owner, repo, err = SplitRepoFullName(submissions[0].Repository.FullName)
		if err != nil {
			return nil, err
		}
	}

	content, err := r.runs.GetFileContents(ctx, owner, repo, r.config.Grading.WorkflowPath)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch workflow file")
	}

	return workflow.ExtractDeclarations([]byte(content))
}

// splitRepoURL extracts owner and repo from an URL like
// https://github.com/owner/repo.
func splitRepoURL(url string) (string, string, error) {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) < 2 {
		return "", "", errors.WithMessage(ErrInvalidRepository, url)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

package grader

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/classgrade/classgrade/internal/github"
	lf "github.com/classgrade/classgrade/internal/logfield"
	"github.com/classgrade/classgrade/internal/models"
)

var (
	ErrInvalidRepository     = errors.New("Invalid repository name")
	ErrMissingAutogradingJob = errors.New("No autograding job found in run")
)

// The roster restricts the run listing server-side to autograding
// dispatches that have finished.
const (
	runEventFilter  = "repository_dispatch"
	runStatusFilter = "completed"
)

// SplitRepoFullName splits "owner/name" into its parts.
func SplitRepoFullName(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.WithMessage(ErrInvalidRepository, fullName)
	}
	return parts[0], parts[1], nil
}

// ResolveStudent chains run selection, step scoring and log refinement
// into one immutable result record for a single submission.
func (r *Resolver) ResolveStudent(
	ctx context.Context,
	submission *models.AcceptedSubmission,
	deadline *time.Time,
	declarations []models.TestDeclaration,
) (*models.StudentResult, error) {
	owner, repo, err := SplitRepoFullName(submission.Repository.FullName)
	if err != nil {
		return nil, err
	}

	login := submission.Login()
	log := r.logger.With(lf.StudentLogin(login), lf.Repo(submission.Repository.FullName))

	runs, err := r.runs.ListWorkflowRuns(ctx, owner, repo, github.ListRunsOptions{
		Event:        runEventFilter,
		Status:       runStatusFilter,
		CreatedAfter: deadline,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list workflow runs for %s", login)
	}

	run, err := SelectRun(runs, deadline)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to select run for %s", login)
	}
	log = log.With(lf.RunID(run.ID))

	jobs, err := r.runs.ListJobs(ctx, owner, repo, run.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list jobs for %s", login)
	}

	var gradingJob *models.Job
	for i := range jobs {
		if jobs[i].Name == r.config.Grading.GradingJob {
			gradingJob = &jobs[i]
			break
		}
	}
	if gradingJob == nil {
		return nil, errors.Wrapf(ErrMissingAutogradingJob, "student %s", login)
	}

	tests, provisional := ResolveSteps(declarations, gradingJob)
	total := r.refineTotal(ctx, log, owner, repo, gradingJob.ID, provisional)

	order := make([]string, len(declarations))
	for i := range declarations {
		order[i] = declarations[i].Name
	}

	return &models.StudentResult{
		Login:          login,
		RepoURL:        submission.Repository.HTMLURL,
		RunTimestamp:   run.CreatedAt,
		Tests:          tests,
		Order:          order,
		TotalAwarded:   total,
		TotalAvailable: models.TotalAvailable(declarations),
	}, nil
}

// refineTotal overrides the provisional step-based total with the true
// partial-credit total from the job log when one can be parsed. The
// per-test breakdown intentionally stays binary. Any fetch or parse
// failure keeps the provisional total.
func (r *Resolver) refineTotal(ctx context.Context, log *zap.Logger, owner, repo string, jobID int64, provisional int) int {
	logText, err := r.runs.GetJobLog(ctx, owner, repo, jobID)
	if err != nil {
		log.Warn("Failed to fetch job log, keeping provisional total",
			lf.JobID(jobID), zap.Error(err))
		return provisional
	}

	total, ok := ParseLogTotal(logText)
	if !ok {
		log.Debug("No point total found in job log", lf.JobID(jobID))
		return provisional
	}

	if total != provisional {
		log.Debug("Overriding provisional total from job log",
			lf.JobID(jobID),
			zap.Int("provisional", provisional),
			zap.Int("refined", total),
		)
	}
	return total
}

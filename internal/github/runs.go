package github

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/classgrade/classgrade/internal/logfield"
	"github.com/classgrade/classgrade/internal/models"
)

const runsPageSize = 100

type workflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	HeadBranch string    `json:"head_branch"`
	Status     string    `json:"status"`
	Conclusion *string   `json:"conclusion"`
	CreatedAt  time.Time `json:"created_at"`
	Event      string    `json:"event"`
}

type runsResponse struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []workflowRun `json:"workflow_runs"`
}

type jobStep struct {
	Name       string  `json:"name"`
	Number     int     `json:"number"`
	Status     string  `json:"status"`
	Conclusion *string `json:"conclusion"`
}

type job struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Conclusion *string   `json:"conclusion"`
	Steps      []jobStep `json:"steps"`
}

type jobsResponse struct {
	TotalCount int   `json:"total_count"`
	Jobs       []job `json:"jobs"`
}

// ListRunsOptions restricts the run listing server-side. CreatedAfter
// becomes a ">=" created filter in the API query.
type ListRunsOptions struct {
	Event        string
	Status       string
	CreatedAfter *time.Time
}

func (c *Client) ListWorkflowRuns(ctx context.Context, owner, repo string, opts ListRunsOptions) ([]models.WorkflowRun, error) {
	query := map[string]string{
		"per_page": strconv.Itoa(runsPageSize),
	}
	if opts.Event != "" {
		query["event"] = opts.Event
	}
	if opts.Status != "" {
		query["status"] = opts.Status
	}
	if opts.CreatedAfter != nil {
		query["created"] = ">=" + opts.CreatedAfter.Format(time.RFC3339)
	}

	runs := make([]models.WorkflowRun, 0)
	for page := 1; page <= c.config.Pagination.RunsMaxPages; page++ {
		query["page"] = strconv.Itoa(page)

		res := &runsResponse{}
		err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/actions/runs", owner, repo), query, res)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to list workflow runs")
		}
		if len(res.WorkflowRuns) == 0 {
			break
		}

		for _, run := range res.WorkflowRuns {
			conclusion := ""
			if run.Conclusion != nil {
				conclusion = *run.Conclusion
			}
			runs = append(runs, models.WorkflowRun{
				ID:         run.ID,
				CreatedAt:  run.CreatedAt,
				Conclusion: conclusion,
			})
		}

		if len(res.WorkflowRuns) < runsPageSize {
			break
		}
	}

	c.logger.Debug("Listed workflow runs",
		lf.Repo(owner+"/"+repo),
		zap.Int("num_runs", len(runs)),
	)
	return runs, nil
}

func (c *Client) ListJobs(ctx context.Context, owner, repo string, runID int64) ([]models.Job, error) {
	res := &jobsResponse{}
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/actions/runs/%d/jobs", owner, repo, runID), nil, res)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list jobs")
	}

	jobs := make([]models.Job, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		steps := make([]models.JobStep, 0, len(j.Steps))
		for _, s := range j.Steps {
			conclusion := ""
			if s.Conclusion != nil {
				conclusion = *s.Conclusion
			}
			steps = append(steps, models.JobStep{
				Name:       s.Name,
				Number:     s.Number,
				Conclusion: conclusion,
			})
		}
		jobs = append(jobs, models.Job{
			ID:    j.ID,
			Name:  j.Name,
			Steps: steps,
		})
	}

	c.logger.Debug("Listed jobs",
		lf.Repo(owner+"/"+repo),
		lf.RunID(runID),
		zap.Int("num_jobs", len(jobs)),
	)
	return jobs, nil
}

// GetJobLog fetches the raw execution log of a job. The endpoint answers
// with a redirect to plain text, which resty follows.
func (c *Client) GetJobLog(ctx context.Context, owner, repo string, jobID int64) (string, error) {
	var body string
	err := c.retry.Execute(ctx, func() error {
		resp, err := c.rest.R().
			SetContext(ctx).
			Get(fmt.Sprintf("/repos/%s/%s/actions/jobs/%d/logs", owner, repo, jobID))
		if err != nil {
			return errors.Wrap(err, "Failed to fetch job log")
		}
		if resp.IsError() {
			return &APIError{
				StatusCode: resp.StatusCode(),
				URL:        resp.Request.URL,
				Body:       string(resp.Body()),
			}
		}
		body = string(resp.Body())
		return nil
	})
	if err != nil {
		return "", err
	}
	return body, nil
}

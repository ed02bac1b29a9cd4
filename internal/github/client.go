// Package github talks to the GitHub REST API: Actions runs, jobs and
// logs for student repositories, repository file contents, and the
// Classroom roster endpoints.
package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/karlseguin/ccache/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/classgrade/classgrade/internal/config"
)

const apiVersion = "2022-11-28"

type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

type Client struct {
	config *config.Config
	rest   *resty.Client
	logger *zap.Logger
	retry  RetryPolicy

	// Workflow files are immutable per grading pass and fetched once per
	// assignment even when late grading resolves the batch twice.
	files *ccache.Cache
}

func NewClient(conf *config.Config, logger *zap.Logger) (*Client, error) {
	if conf.GitHub.Api.Token == "" {
		return nil, errors.New("Empty GitHub token")
	}

	rest := resty.New().
		SetBaseURL(conf.GitHub.BaseURL).
		SetTimeout(conf.GitHub.Timeout).
		SetAuthToken(conf.GitHub.Api.Token).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion).
		SetHeader("User-Agent", "classgrade")

	return &Client{
		config: conf,
		rest:   rest,
		logger: logger,
		retry:  NewRetryPolicy(conf.Retry.MaxAttempts, conf.Retry.Delay),
		files:  ccache.New(ccache.Configure().MaxSize(128)),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, result interface{}) error {
	return c.retry.Execute(ctx, func() error {
		req := c.rest.R().SetContext(ctx).SetQueryParams(query)
		if result != nil {
			req.SetResult(result)
		}

		resp, err := req.Get(path)
		if err != nil {
			return errors.Wrapf(err, "Failed to send request to %s", path)
		}
		if resp.IsError() {
			return &APIError{
				StatusCode: resp.StatusCode(),
				URL:        path,
				Body:       string(resp.Body()),
			}
		}
		return nil
	})
}

type fileContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// GetFileContents fetches a file from a repository. The contents API
// returns base64 with embedded newlines.
func (c *Client) GetFileContents(ctx context.Context, owner, repo, path string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s", owner, repo, path)
	if cached := c.files.Get(key); cached != nil && !cached.Expired() {
		return cached.Value().(string), nil
	}

	file := &fileContent{}
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path), nil, file)
	if err != nil {
		return "", errors.Wrap(err, "Failed to fetch file contents")
	}

	content := file.Content
	if file.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
		if err != nil {
			return "", errors.Wrap(err, "Failed to decode file contents")
		}
		content = string(decoded)
	}

	c.files.Set(key, content, time.Hour)
	return content, nil
}

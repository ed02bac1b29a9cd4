package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/classgrade/classgrade/pkg/conf"
)

type Config struct {
	GitHub struct {
		BaseURL string
		Api     struct {
			Token string
		}
		Timeout time.Duration
	}

	Grading struct {
		WorkflowPath string
		GradingJob   string
	}

	Retry struct {
		MaxAttempts int
		Delay       time.Duration
	}

	Pagination struct {
		RosterPageSize int
		RosterMaxPages int
		BrowseMaxPages int
		RunsMaxPages   int
	}

	Log struct {
		Development bool
		File        string
	}
}

func applyDefaults(config *Config) {
	if config.GitHub.BaseURL == "" {
		config.GitHub.BaseURL = "https://api.github.com"
	}
	if config.GitHub.Timeout == 0 {
		config.GitHub.Timeout = 2 * time.Minute
	}
	if config.Grading.WorkflowPath == "" {
		config.Grading.WorkflowPath = ".github/workflows/classroom.yml"
	}
	if config.Grading.GradingJob == "" {
		config.Grading.GradingJob = "run-autograding-tests"
	}
	if config.Retry.MaxAttempts == 0 {
		config.Retry.MaxAttempts = 3
	}
	if config.Retry.Delay == 0 {
		config.Retry.Delay = 2 * time.Second
	}
	if config.Pagination.RosterPageSize == 0 {
		config.Pagination.RosterPageSize = 30
	}
	if config.Pagination.RosterMaxPages == 0 {
		config.Pagination.RosterMaxPages = 100
	}
	if config.Pagination.BrowseMaxPages == 0 {
		config.Pagination.BrowseMaxPages = 10
	}
	if config.Pagination.RunsMaxPages == 0 {
		config.Pagination.RunsMaxPages = 10
	}
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	if err := conf.ParseConfig(config, conf.EnvPrefix("CLG"), conf.ConfigFile(path)); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	applyDefaults(config)

	if config.GitHub.Api.Token == "" {
		return nil, errors.New("GitHub token is not set (CLG_GITHUB_API_TOKEN)")
	}

	return config, nil
}

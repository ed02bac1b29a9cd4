// Package workflow extracts graded test declarations from a GitHub
// Classroom autograding workflow definition.
package workflow

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/classgrade/classgrade/internal/models"
)

const (
	// GradingJobName is the job whose steps represent graded tests.
	GradingJobName = "run-autograding-tests"

	// graderMarker identifies an autograding step by its action reference.
	graderMarker = "autograding-command-grader"
)

var (
	ErrMissingGradingJob = errors.New("No grading job found in workflow")
	ErrNoTestsFound      = errors.New("No autograding tests found in workflow")
)

type stepWith struct {
	TestName string `yaml:"test-name"`
	MaxScore *int   `yaml:"max-score"`
}

type step struct {
	Name string    `yaml:"name"`
	ID   string    `yaml:"id"`
	Uses string    `yaml:"uses"`
	With *stepWith `yaml:"with"`
}

type job struct {
	Steps []step `yaml:"steps"`
}

type workflowFile struct {
	Jobs map[string]job `yaml:"jobs"`
}

// ExtractDeclarations parses a workflow definition and returns the graded
// test declarations in file order. Steps that reference the grader action
// but lack an id or a max-score are skipped silently.
func ExtractDeclarations(content []byte) ([]models.TestDeclaration, error) {
	parsed := workflowFile{}
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return nil, errors.Wrap(err, "Failed to parse workflow file")
	}

	grading, found := parsed.Jobs[GradingJobName]
	if !found {
		return nil, ErrMissingGradingJob
	}

	declarations := make([]models.TestDeclaration, 0, len(grading.Steps))
	for _, s := range grading.Steps {
		if !strings.Contains(s.Uses, graderMarker) {
			continue
		}
		if s.ID == "" || s.With == nil || s.With.MaxScore == nil {
			continue
		}
		declarations = append(declarations, models.TestDeclaration{
			Name:     s.Name,
			ID:       s.ID,
			MaxScore: *s.With.MaxScore,
		})
	}

	if len(declarations) == 0 {
		return nil, ErrNoTestsFound
	}

	return declarations, nil
}

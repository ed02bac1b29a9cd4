package models

import (
	"time"
)

type Classroom struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
	URL      string `json:"url"`
}

type Assignment struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Accepted       int        `json:"accepted"`
	Submitted      int        `json:"submitted"`
	Passing        int        `json:"passing"`
	Deadline       *time.Time `json:"deadline"`
	StarterCodeURL string     `json:"starter_code_url"`
}

type Student struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
}

type Repository struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
}

// AcceptedSubmission is one roster entry: a student (or the first member
// of a team) together with the repository created for them.
type AcceptedSubmission struct {
	ID         int64      `json:"id"`
	Students   []Student  `json:"students"`
	Repository Repository `json:"repository"`
}

// Login returns the graded student handle for the submission.
func (s *AcceptedSubmission) Login() string {
	if len(s.Students) == 0 {
		return "unknown"
	}
	return s.Students[0].Login
}

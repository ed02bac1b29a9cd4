package github

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/classgrade/classgrade/internal/logfield"
	"github.com/classgrade/classgrade/internal/models"
)

const browsePageSize = 100

// ListClassrooms returns the classrooms visible to the token.
func (c *Client) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	all := make([]models.Classroom, 0)
	for page := 1; page <= c.config.Pagination.BrowseMaxPages; page++ {
		var classrooms []models.Classroom
		err := c.get(ctx, "/classrooms", map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(browsePageSize),
		}, &classrooms)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to list classrooms")
		}
		if len(classrooms) == 0 {
			break
		}
		all = append(all, classrooms...)
	}
	return all, nil
}

func (c *Client) GetClassroom(ctx context.Context, classroomID int64) (*models.Classroom, error) {
	classroom := &models.Classroom{}
	err := c.get(ctx, fmt.Sprintf("/classrooms/%d", classroomID), nil, classroom)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get classroom")
	}
	return classroom, nil
}

func (c *Client) ListAssignments(ctx context.Context, classroomID int64) ([]models.Assignment, error) {
	all := make([]models.Assignment, 0)
	for page := 1; page <= c.config.Pagination.BrowseMaxPages; page++ {
		var assignments []models.Assignment
		err := c.get(ctx, fmt.Sprintf("/classrooms/%d/assignments", classroomID), map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(browsePageSize),
		}, &assignments)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to list assignments")
		}
		if len(assignments) == 0 {
			break
		}
		all = append(all, assignments...)
	}
	return all, nil
}

func (c *Client) GetAssignment(ctx context.Context, assignmentID int64) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	err := c.get(ctx, fmt.Sprintf("/assignments/%d", assignmentID), nil, assignment)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get assignment")
	}
	return assignment, nil
}

// ListAcceptedSubmissions pages through the assignment roster. The page
// size is kept small: the endpoint serializes whole submission records
// and times out on large pages.
func (c *Client) ListAcceptedSubmissions(ctx context.Context, assignmentID int64) ([]models.AcceptedSubmission, error) {
	all := make([]models.AcceptedSubmission, 0)
	for page := 1; page <= c.config.Pagination.RosterMaxPages; page++ {
		var accepted []models.AcceptedSubmission
		err := c.get(ctx, fmt.Sprintf("/assignments/%d/accepted_assignments", assignmentID), map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(c.config.Pagination.RosterPageSize),
		}, &accepted)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to list accepted submissions")
		}
		if len(accepted) == 0 {
			break
		}
		all = append(all, accepted...)
	}

	c.logger.Debug("Listed accepted submissions",
		lf.AssignmentID(assignmentID),
		zap.Int("num_submissions", len(all)),
	)
	return all, nil
}

// Package report flattens resolved batches into ordered records. The
// field order here dictates the downstream export schema; serialization
// itself (CSV or otherwise) is left to the consumer.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/classgrade/classgrade/internal/grader"
	"github.com/classgrade/classgrade/internal/models"
)

// Header builds the column names for a regular batch: student handle,
// repo URL, run timestamp, one column per declaration in extraction
// order, then the totals.
func Header(declarations []models.TestDeclaration) []string {
	header := []string{
		"student_username",
		"student_repo_url",
		"workflow_run_timestamp",
	}
	for _, declaration := range declarations {
		header = append(header, declaration.Name)
	}
	return append(header,
		"total_points_awarded",
		"total_points_available",
		"percentage",
	)
}

func Row(declarations []models.TestDeclaration, result *models.StudentResult) []string {
	row := []string{
		result.Login,
		result.RepoURL,
		result.RunTimestamp.Format(time.RFC3339),
	}
	for _, declaration := range declarations {
		awarded := 0
		if test, found := result.Tests[declaration.Name]; found {
			awarded = test.PointsAwarded
		}
		row = append(row, strconv.Itoa(awarded))
	}
	return append(row,
		strconv.Itoa(result.TotalAwarded),
		strconv.Itoa(result.TotalAvailable),
		fmt.Sprintf("%.2f", result.Percentage()),
	)
}

func Rows(batch *grader.BatchResult) [][]string {
	rows := make([][]string, 0, len(batch.Results))
	for _, result := range batch.Results {
		rows = append(rows, Row(batch.Declarations, result))
	}
	return rows
}

// LateHeader is the late-grading variant: both run timestamps plus the
// blended final score and percentage replace the single-run columns.
func LateHeader(declarations []models.TestDeclaration) []string {
	header := []string{
		"student_username",
		"student_repo_url",
		"ontime_run_timestamp",
		"late_run_timestamp",
	}
	for _, declaration := range declarations {
		header = append(header, declaration.Name)
	}
	return append(header,
		"total_points_available",
		"ontime_points_awarded",
		"late_points_awarded",
		"final_score",
		"final_percentage",
	)
}

func LateRow(declarations []models.TestDeclaration, result *models.LateGradingResult) []string {
	row := []string{
		result.Login,
		result.RepoURL,
		result.OnTime.RunTimestamp.Format(time.RFC3339),
		result.Late.RunTimestamp.Format(time.RFC3339),
	}
	for _, declaration := range declarations {
		awarded := 0
		if test, found := result.OnTime.Tests[declaration.Name]; found {
			awarded = test.PointsAwarded
		}
		row = append(row, strconv.Itoa(awarded))
	}
	return append(row,
		strconv.Itoa(result.OnTime.TotalAvailable),
		strconv.Itoa(result.OnTime.TotalAwarded),
		strconv.Itoa(result.Late.TotalAwarded),
		strconv.Itoa(result.FinalScore),
		fmt.Sprintf("%.2f", result.FinalPercentage()),
	)
}

func LateRows(combined *grader.LateBatchResult) [][]string {
	rows := make([][]string, 0, len(combined.Results))
	for _, result := range combined.Results {
		rows = append(rows, LateRow(combined.OnTime.Declarations, result))
	}
	return rows
}

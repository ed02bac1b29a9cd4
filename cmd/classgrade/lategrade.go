package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/classgrade/classgrade/internal/grader"
	"github.com/classgrade/classgrade/internal/report"
)

func makeLateGradeCommand() *cobra.Command {
	var assignmentID int64
	var onTimeStr, lateStr string
	var penalty float64

	cmd := &cobra.Command{
		Use:   "lategrade",
		Short: "Resolve on-time and late runs and blend them under a penalty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLateGrade(assignmentID, onTimeStr, lateStr, penalty)
		},
	}
	cmd.Flags().Int64Var(&assignmentID, "assignment", 0, "Assignment ID")
	cmd.Flags().StringVar(&onTimeStr, "ontime", "", "On-time deadline (RFC3339)")
	cmd.Flags().StringVar(&lateStr, "late", "", "Late deadline (RFC3339)")
	cmd.Flags().Float64Var(&penalty, "penalty", 0.2, "Penalty fraction applied to improving late scores")
	cmd.MarkFlagRequired("assignment")
	cmd.MarkFlagRequired("late")

	return cmd
}

func runLateGrade(assignmentID int64, onTimeStr, lateStr string, penalty float64) error {
	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	onTimeDeadline, err := parseDeadline(onTimeStr)
	if err != nil {
		return err
	}
	lateDeadline, err := parseDeadline(lateStr)
	if err != nil {
		return err
	}

	policy, err := grader.NewLatePolicy(penalty)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	combined, err := resolver.ResolveLateGrading(ctx, assignmentID, onTimeDeadline, lateDeadline, policy, printProgress)
	if err != nil {
		return errors.Wrap(err, "Failed to resolve late grading")
	}

	printRecords(report.LateHeader(combined.OnTime.Declarations), report.LateRows(combined))
	printStats(grader.CalcStats(combined.OnTime))

	for _, studentErr := range append(combined.OnTime.Errors, combined.Late.Errors...) {
		log.Warn("Student not scored in one of the passes",
			zap.String("student_login", studentErr.Login),
			zap.Error(studentErr.Err),
		)
	}
	return nil
}

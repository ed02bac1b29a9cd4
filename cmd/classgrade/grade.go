package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/classgrade/classgrade/internal/config"
	"github.com/classgrade/classgrade/internal/github"
	"github.com/classgrade/classgrade/internal/grader"
	"github.com/classgrade/classgrade/internal/report"
	zlog "github.com/classgrade/classgrade/pkg/log"
)

func makeGradeCommand() *cobra.Command {
	var assignmentID int64
	var deadlineStr string

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Resolve autograding results for an assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(assignmentID, deadlineStr)
		},
	}
	cmd.Flags().Int64Var(&assignmentID, "assignment", 0, "Assignment ID")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "Optional deadline (RFC3339); grades the first run at/after it")
	cmd.MarkFlagRequired("assignment")

	return cmd
}

func newClient() (*github.Client, *config.Config, *zap.Logger, error) {
	conf, err := config.ParseConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := log
	if conf.Log.File != "" {
		logger = zlog.InitFile(conf.Log.File, conf.Log.Development)
	}

	client, err := github.NewClient(conf, logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "Failed to create GitHub client")
	}
	return client, conf, logger, nil
}

func newResolver() (*grader.Resolver, *config.Config, error) {
	client, conf, logger, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	return grader.NewResolver(conf, logger, client, client), conf, nil
}

func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid deadline %q", value)
	}
	return &parsed, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func printProgress(index, total int, login string) {
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", index, total, login)
}

func printRecords(header []string, rows [][]string) {
	fmt.Println(strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Println(strings.Join(row, "\t"))
	}
}

func printStats(stats grader.Stats) {
	fmt.Fprintf(os.Stderr,
		"\nStudents scored: %d\nErrors: %d\nTests: %d\nAverage: %.2f%%\nMedian: %.2f%%\n",
		stats.TotalStudents, stats.Errors, stats.TotalTests,
		stats.AverageScorePct, stats.MedianScorePct,
	)
}

func runGrade(assignmentID int64, deadlineStr string) error {
	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	deadline, err := parseDeadline(deadlineStr)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	batch, err := resolver.ResolveAssignment(ctx, assignmentID, deadline, printProgress)
	if err != nil {
		return errors.Wrap(err, "Failed to resolve assignment")
	}

	printRecords(report.Header(batch.Declarations), report.Rows(batch))
	printStats(grader.CalcStats(batch))

	for _, studentErr := range batch.Errors {
		log.Warn("Student not scored",
			zap.String("student_login", studentErr.Login),
			zap.Error(studentErr.Err),
		)
	}
	return nil
}

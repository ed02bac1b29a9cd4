package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func makeBrowseClassroomsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classrooms",
		Short: "List classrooms visible to the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return browseClassrooms()
		},
	}
}

func makeBrowseAssignmentsCommand() *cobra.Command {
	var classroomID int64
	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List assignments of a classroom",
		RunE: func(cmd *cobra.Command, args []string) error {
			return browseAssignments(classroomID)
		},
	}
	cmd.Flags().Int64Var(&classroomID, "classroom", 0, "Classroom ID")
	cmd.MarkFlagRequired("classroom")

	return cmd
}

func browseClassrooms() error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	classrooms, err := client.ListClassrooms(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to list classrooms")
	}

	for _, classroom := range classrooms {
		archived := ""
		if classroom.Archived {
			archived = "\t(archived)"
		}
		fmt.Printf("%d\t%s%s\n", classroom.ID, classroom.Name, archived)
	}
	return nil
}

func browseAssignments(classroomID int64) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	assignments, err := client.ListAssignments(ctx, classroomID)
	if err != nil {
		return errors.Wrap(err, "Failed to list assignments")
	}

	for _, assignment := range assignments {
		deadline := "no deadline"
		if assignment.Deadline != nil {
			deadline = assignment.Deadline.Format(time.RFC3339)
		}
		fmt.Printf("%d\t%s\t%s\taccepted=%d\n", assignment.ID, assignment.Title, deadline, assignment.Accepted)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "classgrade",
		Short: "GitHub Classroom autograding resolver",
	}

	browseCmd = &cobra.Command{
		Use:   "browse",
		Short: "Browse classrooms and assignments",
	}
)

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")

	browseCmd.AddCommand(makeBrowseClassroomsCommand())
	browseCmd.AddCommand(makeBrowseAssignmentsCommand())
	rootCmd.AddCommand(makeGradeCommand())
	rootCmd.AddCommand(makeLateGradeCommand())
	rootCmd.AddCommand(browseCmd)
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s", err.Error())
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunghoon/notice-agent/internal/calendar"
	"github.com/sunghoon/notice-agent/internal/extraction"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Resolve a notice's UTC time window from its qualification record",
	Long:  "Window classifies the key-date candidates of a qualification record into a start/end pair and prints the resolved UTC window as JSON.",
	RunE:  runWindow,
}

var (
	windowRecordFile string
	windowTitle      string
)

func init() {
	windowCmd.Flags().StringVarP(&windowRecordFile, "record", "r", "", "Path to qualification record JSON file (required)")
	windowCmd.Flags().StringVarP(&windowTitle, "title", "t", "", "Notice title, used in derived event titles")
	_ = windowCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(windowRecordFile)
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	record, err := extraction.DecodeRecord(data)
	if err != nil {
		return err
	}

	window := calendar.NewClassifier(calendar.DefaultKeywords()).ExtractTimeWindow(record, windowTitle)

	out, err := json.MarshalIndent(window, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal window: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunghoon/notice-agent/internal/llm"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a qualification record from raw notice text",
	Long:  "Extract sends a notice's title and body to the LLM and prints the decoded qualification record as JSON.",
	RunE:  runExtract,
}

var (
	extractTitle    string
	extractBodyFile string
	extractAPIKey   string
	extractModel    string
)

func init() {
	extractCmd.Flags().StringVarP(&extractTitle, "title", "t", "", "Notice title (required)")
	extractCmd.Flags().StringVarP(&extractBodyFile, "body", "b", "", "Path to notice body text file (required)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Override the standard-tier model")
	_ = extractCmd.MarkFlagRequired("title")
	_ = extractCmd.MarkFlagRequired("body")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	body, err := os.ReadFile(extractBodyFile)
	if err != nil {
		return fmt.Errorf("failed to read body file: %w", err)
	}

	ctx := context.Background()

	llmConfig := llm.DefaultConfig()
	if extractModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, extractModel)
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	record, err := llm.NewExtractor(client).ExtractRecord(ctx, extractTitle, string(body))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

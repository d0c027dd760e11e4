package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sunghoon/notice-agent/internal/calendar"
	"github.com/sunghoon/notice-agent/internal/config"
	"github.com/sunghoon/notice-agent/internal/db"
	"github.com/sunghoon/notice-agent/internal/llm"
	"github.com/sunghoon/notice-agent/internal/types"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Backfill extraction results for notices missing them",
	Long:  "Backfill loads notices without an extraction result, runs the LLM extraction and time-window resolution for each, and writes the results back to the database. With --dry-run the extraction still runs but the would-be updates are printed instead of written.",
	RunE:  runBackfill,
}

var (
	backfillConfigFile  string
	backfillDatabaseURL string
	backfillAPIKey      string
	backfillModel       string
	backfillLimit       int
	backfillWorkers     int
	backfillDryRun      bool
	backfillVerbose     bool
)

func init() {
	backfillCmd.Flags().StringVarP(&backfillConfigFile, "config", "c", "", "Path to JSON config file")
	backfillCmd.Flags().StringVar(&backfillDatabaseURL, "db-url", "", "Database URL (falls back to DATABASE_URL)")
	backfillCmd.Flags().StringVar(&backfillAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	backfillCmd.Flags().StringVar(&backfillModel, "model", "", "Override the standard-tier model")
	backfillCmd.Flags().IntVar(&backfillLimit, "limit", 0, "Maximum notices to process in one run (default 50)")
	backfillCmd.Flags().IntVar(&backfillWorkers, "workers", 0, "Concurrent extraction workers (default 4)")
	backfillCmd.Flags().BoolVar(&backfillDryRun, "dry-run", false, "Extract and print the would-be updates without writing to the database")
	backfillCmd.Flags().BoolVarP(&backfillVerbose, "verbose", "v", false, "Print per-notice progress")

	rootCmd.AddCommand(backfillCmd)
}

func runBackfill(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		APIKey:      backfillAPIKey,
		Model:       backfillModel,
		DatabaseURL: backfillDatabaseURL,
		BatchSize:   backfillLimit,
		Workers:     backfillWorkers,
		Verbose:     backfillVerbose,
	}

	if backfillConfigFile != "" {
		fileCfg, err := config.LoadConfig(backfillConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{BatchSize: 50, Workers: 4})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	extractor := llm.NewExtractor(client)
	classifier := calendar.NewClassifier(calendar.DefaultKeywords())

	notices, err := database.ListNoticesMissingAI(ctx, cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(notices) == 0 {
		fmt.Println("No notices to backfill")
		return nil
	}

	var processed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, notice := range notices {
		notice := notice
		g.Go(func() error {
			record, err := extractor.ExtractRecord(gctx, notice.Title, notice.Body)
			if err != nil {
				// One bad notice should not abort the batch.
				failed.Add(1)
				fmt.Fprintf(os.Stderr, "notice %d: extraction failed: %v\n", notice.ID, err)
				return nil
			}

			window := classifier.ExtractTimeWindow(record, notice.Title)

			if backfillDryRun {
				fmt.Println(dryRunSummary(notice.ID, record, window))
				processed.Add(1)
				return nil
			}

			raw, err := json.Marshal(record)
			if err != nil {
				failed.Add(1)
				fmt.Fprintf(os.Stderr, "notice %d: marshal failed: %v\n", notice.ID, err)
				return nil
			}

			if err := database.UpdateNoticeAI(gctx, notice.ID, db.NoticeUpdateInput{
				Category:      record.Category,
				Qualification: raw,
				Hashtags:      record.Hashtags,
				StartAt:       window.StartAt,
				EndAt:         window.EndAt,
			}); err != nil {
				failed.Add(1)
				fmt.Fprintf(os.Stderr, "notice %d: update failed: %v\n", notice.ID, err)
				return nil
			}

			processed.Add(1)
			if cfg.Verbose {
				fmt.Printf("notice %d: category=%s start=%v end=%v\n",
					notice.ID, record.Category, window.StartAt, window.EndAt)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if backfillDryRun {
		fmt.Printf("Dry run complete: %d previewed, %d failed (no rows written)\n", processed.Load(), failed.Load())
		return nil
	}
	fmt.Printf("Backfill complete: %d processed, %d failed\n", processed.Load(), failed.Load())
	return nil
}

// dryRunSummary formats the update a notice would receive, for preview runs
// that skip the database write.
func dryRunSummary(id int64, record *types.QualificationRecord, window types.TimeWindow) string {
	start, end := "-", "-"
	if window.StartAt != nil {
		start = window.StartAt.Format("2006-01-02 15:04")
	}
	if window.EndAt != nil {
		end = window.EndAt.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("notice %d (dry-run): category=%s hashtags=%v start=%s end=%s",
		id, record.Category, record.Hashtags, start, end)
}

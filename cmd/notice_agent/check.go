package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sunghoon/notice-agent/internal/db"
	"github.com/sunghoon/notice-agent/internal/extraction"
	"github.com/sunghoon/notice-agent/internal/matching"
	"github.com/sunghoon/notice-agent/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a user profile against a notice's qualification record",
	Long:  "Check evaluates a user profile against an extracted qualification record and prints the suitability verdict as JSON.",
	RunE:  runCheck,
}

var (
	checkProfileFile string
	checkRecordFile  string
	checkUserID      string
	checkNoticeID    int64
	checkDatabaseURL string
)

func init() {
	checkCmd.Flags().StringVarP(&checkProfileFile, "profile", "p", "", "Path to user profile JSON file")
	checkCmd.Flags().StringVarP(&checkRecordFile, "record", "r", "", "Path to qualification record JSON file")
	checkCmd.Flags().StringVar(&checkUserID, "user-id", "", "User UUID to load the profile from the database")
	checkCmd.Flags().Int64Var(&checkNoticeID, "notice-id", 0, "Notice ID to load the record from the database")
	checkCmd.Flags().StringVar(&checkDatabaseURL, "db-url", "", "Database URL (required with --user-id/--notice-id, falls back to DATABASE_URL)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	useDatabase := checkUserID != "" || checkNoticeID != 0
	useFiles := checkProfileFile != "" || checkRecordFile != ""

	if useDatabase && useFiles {
		return fmt.Errorf("cannot mix --user-id/--notice-id with --profile/--record flags")
	}
	if !useDatabase && !useFiles {
		return fmt.Errorf("must provide either --profile/--record or --user-id/--notice-id")
	}

	ctx := context.Background()

	var profile types.UserProfile
	var record *types.QualificationRecord

	if useFiles {
		if checkProfileFile == "" || checkRecordFile == "" {
			return fmt.Errorf("both --profile and --record are required in file mode")
		}

		profileData, err := os.ReadFile(checkProfileFile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		if err := json.Unmarshal(profileData, &profile); err != nil {
			return fmt.Errorf("failed to parse profile JSON: %w", err)
		}

		recordData, err := os.ReadFile(checkRecordFile)
		if err != nil {
			return fmt.Errorf("failed to read record file: %w", err)
		}
		record, err = extraction.DecodeRecord(recordData)
		if err != nil {
			return err
		}
	} else {
		if checkUserID == "" || checkNoticeID == 0 {
			return fmt.Errorf("both --user-id and --notice-id are required in database mode")
		}

		userID, err := uuid.Parse(checkUserID)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}

		dbURL := checkDatabaseURL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
		}

		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer database.Close()

		profile, err = database.GetUserProfile(ctx, userID)
		if err != nil {
			return err
		}

		notice, err := database.GetNotice(ctx, checkNoticeID)
		if err != nil {
			return err
		}
		if notice == nil {
			return fmt.Errorf("notice not found: %d", checkNoticeID)
		}
		if len(notice.Qualification) == 0 {
			record = &types.QualificationRecord{}
		} else {
			record, err = extraction.DecodeRecord(notice.Qualification)
			if err != nil {
				return err
			}
		}
	}

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	verdict := matching.New(nil).CheckSuitability(profile, record)

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunghoon/notice-agent/internal/types"
)

func TestBackfillFlags(t *testing.T) {
	for _, name := range []string{"config", "db-url", "api-key", "model", "limit", "workers", "dry-run", "verbose"} {
		assert.NotNil(t, backfillCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestRunBackfill_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	backfillDatabaseURL = ""
	backfillAPIKey = "test-key"
	defer func() { backfillAPIKey = "" }()

	err := runBackfill(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL")
}

func TestDryRunSummary(t *testing.T) {
	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 14, 59, 0, 0, time.UTC)
	record := &types.QualificationRecord{
		Category: "장학",
		Hashtags: []string{"#장학"},
	}

	got := dryRunSummary(7, record, types.TimeWindow{StartAt: &start, EndAt: &end})
	assert.Equal(t, "notice 7 (dry-run): category=장학 hashtags=[#장학] start=2025-03-02 00:00 end=2025-03-15 14:59", got)

	got = dryRunSummary(8, &types.QualificationRecord{Category: "기타"}, types.TimeWindow{})
	assert.Equal(t, "notice 8 (dry-run): category=기타 hashtags=[] start=- end=-", got)
}

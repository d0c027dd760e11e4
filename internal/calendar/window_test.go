package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunghoon/notice-agent/internal/types"
)

func newTestClassifier() *Classifier {
	c := NewClassifier(DefaultKeywords())
	c.Parser().Now = fixedNow
	return c
}

func TestExtractTimeWindow_StartAndEnd(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "접수 시작", DateText: "2025년 3월 2일"},
			{TypeLabel: "제출 마감", DateText: "2025년 3월 15일까지"},
		},
	}

	window := c.ExtractTimeWindow(record, "모집 공고")
	require.NotNil(t, window.StartAt)
	require.NotNil(t, window.EndAt)

	wantStart := time.Date(2025, 3, 2, 9, 0, 0, 0, KST).UTC()
	wantEnd := time.Date(2025, 3, 15, 23, 59, 0, 0, KST).UTC()
	assert.True(t, window.StartAt.Equal(wantStart), "start %v", window.StartAt)
	assert.True(t, window.EndAt.Equal(wantEnd), "end %v", window.EndAt)
}

func TestExtractTimeWindow_OrderIndependentForLabeledCandidates(t *testing.T) {
	c := newTestClassifier()

	forward := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "접수 시작", DateText: "2025년 3월 2일"},
			{TypeLabel: "접수 마감", DateText: "2025년 3월 15일"},
		},
	}
	reversed := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "접수 마감", DateText: "2025년 3월 15일"},
			{TypeLabel: "접수 시작", DateText: "2025년 3월 2일"},
		},
	}

	assert.Equal(t, c.ExtractTimeWindow(forward, "t"), c.ExtractTimeWindow(reversed, "t"))
}

func TestExtractTimeWindow_AccumulatesExtremes(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "1차 마감", DateText: "2025년 3월 10일"},
			{TypeLabel: "2차 마감", DateText: "2025년 3월 20일"},
			{TypeLabel: "접수 시작", DateText: "2025년 3월 5일"},
			{TypeLabel: "오픈", DateText: "2025년 3월 1일"},
		},
	}

	window := c.ExtractTimeWindow(record, "t")
	require.NotNil(t, window.StartAt)
	require.NotNil(t, window.EndAt)
	assert.Equal(t, 1, window.StartAt.In(KST).Day())
	assert.Equal(t, 20, window.EndAt.In(KST).Day())
}

func TestExtractTimeWindow_AmbiguousFillsStartThenEnd(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "행사일", DateText: "2025년 3월 2일"},
			{TypeLabel: "예비일", DateText: "2025년 3월 9일"},
		},
	}

	window := c.ExtractTimeWindow(record, "t")
	require.NotNil(t, window.StartAt)
	require.NotNil(t, window.EndAt)
	assert.Equal(t, 2, window.StartAt.In(KST).Day())
	assert.Equal(t, 9, window.EndAt.In(KST).Day())
}

func TestExtractTimeWindow_RootFieldsActAsOneMoreCandidate(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "접수 시작", DateText: "2025년 3월 2일"},
		},
		KeyDateType: "마감",
		KeyDate:     "2025년 3월 15일",
	}

	window := c.ExtractTimeWindow(record, "t")
	require.NotNil(t, window.StartAt)
	require.NotNil(t, window.EndAt)
	assert.Equal(t, 15, window.EndAt.In(KST).Day())
}

func TestExtractTimeWindow_EndBeforeStartDiscardsEnd(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "접수 시작", DateText: "2025년 3월 20일"},
			{TypeLabel: "접수 마감", DateText: "2025년 3월 2일"},
		},
	}

	window := c.ExtractTimeWindow(record, "t")
	require.NotNil(t, window.StartAt)
	assert.Nil(t, window.EndAt)
}

func TestExtractTimeWindow_PrefersISOValue(t *testing.T) {
	c := newTestClassifier()

	record := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "마감", DateText: "엉뚱한 텍스트", ISOValue: "2025-03-15T18:00:00"},
		},
	}

	window := c.ExtractTimeWindow(record, "t")
	require.NotNil(t, window.EndAt)

	// Naive ISO timestamps are interpreted as KST.
	want := time.Date(2025, 3, 15, 18, 0, 0, 0, KST).UTC()
	assert.True(t, window.EndAt.Equal(want), "end %v", window.EndAt)
}

func TestExtractTimeWindow_EmptyAndNilRecords(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, types.TimeWindow{}, c.ExtractTimeWindow(nil, "t"))
	assert.Equal(t, types.TimeWindow{}, c.ExtractTimeWindow(&types.QualificationRecord{}, "t"))

	unparseable := &types.QualificationRecord{
		KeyDates: []types.DateCandidate{
			{TypeLabel: "마감", DateText: "추후 공지"},
		},
	}
	assert.Equal(t, types.TimeWindow{}, c.ExtractTimeWindow(unparseable, "t"))
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{"empty", "", nil},
		{"garbage", "next week", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseISO(tt.value))
		})
	}

	t.Run("rfc3339 keeps zone", func(t *testing.T) {
		got := ParseISO("2025-03-15T18:00:00+09:00")
		require.NotNil(t, got)
		want := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
		assert.True(t, got.Equal(want), "got %v", got)
	})

	t.Run("naive date is KST midnight", func(t *testing.T) {
		got := ParseISO("2025-10-10")
		require.NotNil(t, got)
		want := time.Date(2025, 10, 9, 15, 0, 0, 0, time.UTC)
		assert.True(t, got.Equal(want), "got %v", got)
	})

	t.Run("naive datetime with space", func(t *testing.T) {
		got := ParseISO("2025-10-10 12:00:00")
		require.NotNil(t, got)
		want := time.Date(2025, 10, 10, 3, 0, 0, 0, time.UTC)
		assert.True(t, got.Equal(want), "got %v", got)
	})
}

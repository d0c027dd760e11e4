package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCheckFlags() {
	checkProfileFile = ""
	checkRecordFile = ""
	checkUserID = ""
	checkNoticeID = 0
	checkDatabaseURL = ""
}

func TestRunCheck_FlagValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{
			name:  "no flags",
			setup: func() {},
		},
		{
			name: "mixed file and database flags",
			setup: func() {
				checkProfileFile = "profile.json"
				checkUserID = "00000000-0000-0000-0000-000000000000"
			},
		},
		{
			name: "profile without record",
			setup: func() {
				checkProfileFile = "profile.json"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCheckFlags()
			tt.setup()
			assert.Error(t, runCheck(nil, nil))
		})
	}
	resetCheckFlags()
}

func TestRunCheck_FileMode(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	recordPath := filepath.Join(dir, "record.json")

	require.NoError(t, os.WriteFile(profilePath, []byte(`{
		"grade_level": "학부 3학년",
		"gpa": 3.8
	}`), 0644))
	require.NoError(t, os.WriteFile(recordPath, []byte(`{
		"category": "장학",
		"qualifications": {"gpa_min": "3.0 이상"}
	}`), 0644))

	resetCheckFlags()
	checkProfileFile = profilePath
	checkRecordFile = recordPath
	assert.NoError(t, runCheck(nil, nil))
	resetCheckFlags()
}

func TestRunCheck_BadProfileJSON(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	recordPath := filepath.Join(dir, "record.json")

	require.NoError(t, os.WriteFile(profilePath, []byte(`not json`), 0644))
	require.NoError(t, os.WriteFile(recordPath, []byte(`{}`), 0644))

	resetCheckFlags()
	checkProfileFile = profilePath
	checkRecordFile = recordPath
	assert.Error(t, runCheck(nil, nil))
	resetCheckFlags()
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWindow_FileMode(t *testing.T) {
	dir := t.TempDir()
	recordPath := filepath.Join(dir, "record.json")
	require.NoError(t, os.WriteFile(recordPath, []byte(`{
		"key_dates": [
			{"key_date_type": "접수 시작", "key_date": "2025년 3월 2일"},
			{"key_date_type": "접수 마감", "key_date": "2025년 3월 15일까지"}
		]
	}`), 0644))

	windowRecordFile = recordPath
	windowTitle = "모집 공고"
	assert.NoError(t, runWindow(nil, nil))
	windowRecordFile = ""
	windowTitle = ""
}

func TestRunWindow_MissingFile(t *testing.T) {
	windowRecordFile = filepath.Join(t.TempDir(), "missing.json")
	assert.Error(t, runWindow(nil, nil))
	windowRecordFile = ""
}

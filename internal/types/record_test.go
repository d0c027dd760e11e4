package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualificationRecord_Comparable(t *testing.T) {
	var nilRecord *QualificationRecord
	assert.False(t, nilRecord.Comparable())
	assert.False(t, (&QualificationRecord{}).Comparable())
	assert.False(t, (&QualificationRecord{Qualifications: map[string]string{}}).Comparable())
	assert.True(t, (&QualificationRecord{Qualifications: map[string]string{QualGPAMin: "3.0"}}).Comparable())
}

func TestQualificationRecord_Requirement(t *testing.T) {
	rec := &QualificationRecord{Qualifications: map[string]string{QualGender: "여성"}}
	assert.Equal(t, "여성", rec.Requirement(QualGender))
	assert.Equal(t, "", rec.Requirement(QualGPAMin))

	var nilRecord *QualificationRecord
	assert.Equal(t, "", nilRecord.Requirement(QualGPAMin))
}

func TestVerdictConstructors(t *testing.T) {
	nc := NonComparableVerdict()
	assert.False(t, nc.Suitable)
	assert.Nil(t, nc.Pass)
	assert.Equal(t, NonComparableReason, nc.Reason)

	pass := PassVerdict()
	assert.True(t, pass.Suitable)
	require.NotNil(t, pass.Pass)
	assert.True(t, *pass.Pass)

	fail := FailVerdict("학점 미달")
	assert.False(t, fail.Suitable)
	require.NotNil(t, fail.Pass)
	assert.False(t, *fail.Pass)
	assert.Equal(t, "학점 미달", fail.Reason)
}

func TestSuitabilityVerdict_JSONShape(t *testing.T) {
	out, err := json.Marshal(NonComparableVerdict())
	require.NoError(t, err)
	assert.JSONEq(t, `{"suitable": false, "reason": "정보성 공지 (행사/학사/일반)", "pass": null}`, string(out))
}

package types

// SuitabilityVerdict is the matcher's answer for one (profile, notice) pair.
// Pass is nil when the notice carries no qualifications to compare against,
// which is distinct from a comparable notice that fails every check.
type SuitabilityVerdict struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason,omitempty"`
	Pass     *bool  `json:"pass"`
}

// NonComparableReason is the informational note attached to verdicts for
// notices without a qualifications sub-object.
const NonComparableReason = "정보성 공지 (행사/학사/일반)"

// NonComparableVerdict builds the verdict for an informational notice.
func NonComparableVerdict() SuitabilityVerdict {
	return SuitabilityVerdict{Suitable: false, Reason: NonComparableReason, Pass: nil}
}

// PassVerdict builds a full-pass verdict.
func PassVerdict() SuitabilityVerdict {
	passed := true
	return SuitabilityVerdict{Suitable: true, Pass: &passed}
}

// FailVerdict builds a failed verdict carrying the joined failure reasons.
func FailVerdict(reason string) SuitabilityVerdict {
	passed := false
	return SuitabilityVerdict{Suitable: false, Reason: reason, Pass: &passed}
}

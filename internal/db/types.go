package db

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a stored university notice row. Qualification holds the raw
// extraction payload as JSONB; StartAt/EndAt are the resolved UTC window.
type Notice struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	URL           string     `json:"url"`
	Category      string     `json:"category"`
	Qualification []byte     `json:"qualification,omitempty"`
	Hashtags      []string   `json:"hashtags,omitempty"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NoticeUpdateInput carries the AI-derived fields written back onto a
// notice after extraction.
type NoticeUpdateInput struct {
	Category      string
	Qualification []byte
	Hashtags      []string
	StartAt       *time.Time
	EndAt         *time.Time
}

// ProfileRow is a stored user profile keyed by account UUID. RawProfile
// holds the profile JSON as submitted by the user.
type ProfileRow struct {
	UserID     uuid.UUID `json:"user_id"`
	RawProfile []byte    `json:"raw_profile"`
	UpdatedAt  time.Time `json:"updated_at"`
}

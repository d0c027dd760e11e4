package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sunghoon/notice-agent/internal/types"
)

// GetProfileRow retrieves the stored profile row for a user, or nil when
// none exists
func (db *DB) GetProfileRow(ctx context.Context, userID uuid.UUID) (*ProfileRow, error) {
	var row ProfileRow
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, profile, updated_at FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&row.UserID, &row.RawProfile, &row.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &row, nil
}

// GetUserProfile retrieves and decodes a user's profile. A missing row
// yields a zero profile, which the matcher treats as unconstrained.
func (db *DB) GetUserProfile(ctx context.Context, userID uuid.UUID) (types.UserProfile, error) {
	var profile types.UserProfile

	row, err := db.GetProfileRow(ctx, userID)
	if err != nil {
		return profile, err
	}
	if row == nil {
		return profile, nil
	}

	if err := json.Unmarshal(row.RawProfile, &profile); err != nil {
		return profile, fmt.Errorf("failed to decode profile for %s: %w", userID, err)
	}
	return profile, nil
}

// SaveUserProfile upserts a user's profile JSON
func (db *DB) SaveUserProfile(ctx context.Context, userID uuid.UUID, profile types.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, profile, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

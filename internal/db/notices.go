package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetNotice retrieves a notice by ID, or nil when it does not exist
func (db *DB) GetNotice(ctx context.Context, id int64) (*Notice, error) {
	var n Notice
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, body, url, COALESCE(category, ''), qualification,
		        COALESCE(hashtags, '{}'), start_at, end_at, created_at, updated_at
		 FROM notices WHERE id = $1`,
		id,
	).Scan(&n.ID, &n.Title, &n.Body, &n.URL, &n.Category, &n.Qualification,
		&n.Hashtags, &n.StartAt, &n.EndAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return &n, nil
}

// ListNoticesMissingAI retrieves notices that have no extraction result
// yet, oldest first, up to limit
func (db *DB) ListNoticesMissingAI(ctx context.Context, limit int) ([]Notice, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, body, url, COALESCE(category, ''), qualification,
		        COALESCE(hashtags, '{}'), start_at, end_at, created_at, updated_at
		 FROM notices
		 WHERE qualification IS NULL
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []Notice
	for rows.Next() {
		var n Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.URL, &n.Category, &n.Qualification,
			&n.Hashtags, &n.StartAt, &n.EndAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, nil
}

// UpdateNoticeAI writes the extraction result back onto a notice
func (db *DB) UpdateNoticeAI(ctx context.Context, id int64, input NoticeUpdateInput) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE notices
		 SET category = $1, qualification = $2, hashtags = $3,
		     start_at = $4, end_at = $5, updated_at = NOW()
		 WHERE id = $6`,
		input.Category, input.Qualification, input.Hashtags,
		input.StartAt, input.EndAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update notice %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("notice not found: %d", id)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
)

// PostgresSubmissionRepository implements SubmissionRepository using PostgreSQL.
type PostgresSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubmissionRepository creates a new PostgresSubmissionRepository.
func NewPostgresSubmissionRepository(pool *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{pool: pool}
}

// Create records a new submission attempt.
func (r *PostgresSubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (id, kind, status, record_count, filename, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.Kind, s.Status, s.RecordCount, s.Filename, s.RequestID, s.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// Complete marks a submission finished.
func (r *PostgresSubmissionRepository) Complete(ctx context.Context, s *domain.Submission) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submissions
		SET status = $2, backend_status = $3, error_message = $4, completed_at = $5
		WHERE id = $1
	`, s.ID, s.Status, s.BackendStatus, s.ErrorMessage, s.CompletedAt)

	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", s.ID)
	}
	return nil
}

// Get retrieves a submission by ID.
func (r *PostgresSubmissionRepository) Get(ctx context.Context, id string) (*domain.Submission, error) {
	var s domain.Submission

	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, status, record_count, filename, backend_status,
			error_message, request_id, created_at, completed_at
		FROM submissions
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Kind, &s.Status, &s.RecordCount, &s.Filename,
		&s.BackendStatus, &s.ErrorMessage, &s.RequestID, &s.CreatedAt, &s.CompletedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	return &s, nil
}

// ListRecent returns the most recent submissions, newest first.
func (r *PostgresSubmissionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, status, record_count, filename, backend_status,
			error_message, request_id, created_at, completed_at
		FROM submissions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(&s.ID, &s.Kind, &s.Status, &s.RecordCount, &s.Filename,
			&s.BackendStatus, &s.ErrorMessage, &s.RequestID, &s.CreatedAt, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return submissions, nil
}

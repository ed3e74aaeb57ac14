package repository

import (
	"context"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
)

// SubmissionRepository defines methods for submission audit data access.
type SubmissionRepository interface {
	// Create records a new submission attempt in pending state.
	Create(ctx context.Context, submission *domain.Submission) error
	// Complete marks a submission finished: final status, optional backend
	// status code and error message, completion timestamp.
	Complete(ctx context.Context, submission *domain.Submission) error
	// Get retrieves a submission by ID. Returns nil, nil when not found.
	Get(ctx context.Context, id string) (*domain.Submission, error)
	// ListRecent returns the most recent submissions, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Submission, error)
}

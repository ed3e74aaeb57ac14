package service

import (
	"context"
	"io"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/backend"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/transform"
)

// BackendClient is the boundary to the upstream content API. Implemented by
// backend.Client; mocked in tests.
type BackendClient interface {
	SubmitForm(ctx context.Context, payload transform.Payload) (backend.Response, error)
	UploadFile(ctx context.Context, filename string, reader io.Reader) (backend.Response, error)
}

// FormServiceInterface defines the interface for form submissions.
// Used for dependency injection and mocking in tests.
type FormServiceInterface interface {
	// Submit validates a session, transforms it and posts it to the backend.
	Submit(ctx context.Context, requestID string, session *domain.FormSession) (*SubmitResult, error)
	// GetSubmission retrieves a submission audit record by ID.
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
	// ListSubmissions returns the most recent submission audit records.
	ListSubmissions(ctx context.Context, limit int) ([]domain.Submission, error)
}

// UploadServiceInterface defines the interface for spreadsheet uploads.
// Used for dependency injection and mocking in tests.
type UploadServiceInterface interface {
	// Upload forwards a spreadsheet file to the backend after the MIME gate.
	Upload(ctx context.Context, requestID, filename, contentType string, reader io.Reader) (*SubmitResult, error)
}

// SubmitResult is what a successful backend round trip returns to the caller.
type SubmitResult struct {
	SubmissionID string
	Backend      backend.Response
}

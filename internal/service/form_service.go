// Package service orchestrates the submission pipeline: validate fully, then
// transform fully, then call the backend. The three steps are never
// interleaved, and a validation failure stops the pipeline before any network
// traffic. There is no retry anywhere; a failed attempt is recorded and the
// classified error handed back to the caller.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/logger"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/metrics"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/repository"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/transform"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/validator"
)

// FormService handles form session submissions.
type FormService struct {
	client      BackendClient
	submissions repository.SubmissionRepository
}

// NewFormService creates a new FormService.
func NewFormService(client BackendClient, submissions repository.SubmissionRepository) *FormService {
	return &FormService{
		client:      client,
		submissions: submissions,
	}
}

// Submit runs the full pipeline for one form session. On validation failure
// it returns a *ValidationError and the backend is never contacted. On a
// classified backend failure or a transport failure the error propagates
// after the attempt is recorded; the caller's form data is theirs to keep.
func (s *FormService) Submit(ctx context.Context, requestID string, session *domain.FormSession) (*SubmitResult, error) {
	log := logger.WithRequestID(requestID)

	if fieldErrors := validator.ValidateSession(session); !validator.IsFormValid(fieldErrors) {
		log.Info("form rejected by local validation",
			slog.Int("error_count", len(fieldErrors)))
		metrics.ObserveValidationFailure(string(domain.SubmissionKindForm))
		return nil, &ValidationError{Fields: fieldErrors}
	}

	payload := transform.Transform(session.Common, session.Records)

	submission := &domain.Submission{
		ID:          uuid.New().String(),
		Kind:        domain.SubmissionKindForm,
		Status:      domain.SubmissionStatusPending,
		RecordCount: session.RecordCount(),
		RequestID:   requestID,
		CreatedAt:   time.Now(),
	}
	recordSubmission(ctx, s.submissions, submission)

	log.Info("submitting form to backend",
		slog.String("submission_id", submission.ID),
		slog.String("channel", payload.Channel),
		slog.Int("news", len(payload.News)),
		slog.Int("radio", len(payload.Radio)),
		slog.Int("events", len(payload.Events)),
		slog.Int("chat", len(payload.Chat)))

	start := time.Now()
	response, err := s.client.SubmitForm(ctx, payload)
	elapsed := time.Since(start)

	if err != nil {
		completeSubmission(ctx, s.submissions, submission, err)
		metrics.ObserveSubmission(string(domain.SubmissionKindForm), resultLabel(err), elapsed.Seconds())
		log.Warn("form submission failed",
			slog.String("submission_id", submission.ID),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
		return nil, err
	}

	completeSubmission(ctx, s.submissions, submission, nil)
	metrics.ObserveSubmission(string(domain.SubmissionKindForm), "success", elapsed.Seconds())
	metrics.ObserveBackendResponse("form", "2xx")
	log.Info("form submitted",
		slog.String("submission_id", submission.ID),
		slog.Duration("elapsed", elapsed))

	return &SubmitResult{SubmissionID: submission.ID, Backend: response}, nil
}

// GetSubmission retrieves a submission audit record by ID.
func (s *FormService) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	return s.submissions.Get(ctx, id)
}

// ListSubmissions returns the most recent submission audit records.
func (s *FormService) ListSubmissions(ctx context.Context, limit int) ([]domain.Submission, error) {
	return s.submissions.ListRecent(ctx, limit)
}


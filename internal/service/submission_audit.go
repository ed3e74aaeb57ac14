package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/backend"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/logger"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/metrics"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/repository"
)

// The audit store is best effort: a write failure is logged but never stops
// or fails a submission.

func recordSubmission(ctx context.Context, repo repository.SubmissionRepository, submission *domain.Submission) {
	if err := repo.Create(ctx, submission); err != nil {
		logger.Warn("failed to record submission",
			slog.String("submission_id", submission.ID),
			slog.String("error", err.Error()))
	}
}

func completeSubmission(ctx context.Context, repo repository.SubmissionRepository, submission *domain.Submission, submitErr error) {
	now := time.Now()
	submission.CompletedAt = &now
	submission.Status = statusForError(submitErr)

	if submitErr != nil {
		msg := submitErr.Error()
		submission.ErrorMessage = &msg

		var apiErr *backend.APIError
		if errors.As(submitErr, &apiErr) {
			submission.ErrorMessage = &apiErr.Message
			submission.BackendStatus = &apiErr.StatusCode
			metrics.ObserveBackendResponse(string(submission.Kind), metrics.StatusClass(apiErr.StatusCode))
		} else {
			metrics.ObserveBackendResponse(string(submission.Kind), "transport")
		}
	}

	if err := repo.Complete(ctx, submission); err != nil {
		logger.Warn("failed to complete submission record",
			slog.String("submission_id", submission.ID),
			slog.String("error", err.Error()))
	}
}

func statusForError(err error) domain.SubmissionStatus {
	if err == nil {
		return domain.SubmissionStatusSucceeded
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return domain.SubmissionStatusRejected
	}
	return domain.SubmissionStatusFailed
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return "rejected"
	}
	return "transport_error"
}

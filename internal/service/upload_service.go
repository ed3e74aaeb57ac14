package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/logger"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/metrics"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/repository"
)

// AllowedUploadTypes are the spreadsheet MIME types the gateway accepts.
// Anything else is rejected before a single byte reaches the backend.
var AllowedUploadTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
	"application/vnd.ms-excel":                                          true, // .xls
}

// UploadService forwards spreadsheet files to the backend. The file content
// is treated as an opaque blob; the gateway never parses it.
type UploadService struct {
	client      BackendClient
	submissions repository.SubmissionRepository
}

// NewUploadService creates a new UploadService.
func NewUploadService(client BackendClient, submissions repository.SubmissionRepository) *UploadService {
	return &UploadService{
		client:      client,
		submissions: submissions,
	}
}

// Upload checks the declared content type against the spreadsheet allow-list
// and forwards the file. Returns ErrUnsupportedFileType, a classified
// *backend.APIError, or a transport error.
func (s *UploadService) Upload(ctx context.Context, requestID, filename, contentType string, reader io.Reader) (*SubmitResult, error) {
	log := logger.WithRequestID(requestID)

	if !AllowedUploadTypes[contentType] {
		log.Info("upload rejected by MIME gate",
			slog.String("filename", filename),
			slog.String("content_type", contentType))
		metrics.ObserveValidationFailure(string(domain.SubmissionKindUpload))
		return nil, ErrUnsupportedFileType
	}

	submission := &domain.Submission{
		ID:        uuid.New().String(),
		Kind:      domain.SubmissionKindUpload,
		Status:    domain.SubmissionStatusPending,
		Filename:  &filename,
		RequestID: requestID,
		CreatedAt: time.Now(),
	}
	recordSubmission(ctx, s.submissions, submission)

	log.Info("uploading file to backend",
		slog.String("submission_id", submission.ID),
		slog.String("filename", filename))

	start := time.Now()
	response, err := s.client.UploadFile(ctx, filename, reader)
	elapsed := time.Since(start)

	if err != nil {
		completeSubmission(ctx, s.submissions, submission, err)
		metrics.ObserveSubmission(string(domain.SubmissionKindUpload), resultLabel(err), elapsed.Seconds())
		log.Warn("file upload failed",
			slog.String("submission_id", submission.ID),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
		return nil, err
	}

	completeSubmission(ctx, s.submissions, submission, nil)
	metrics.ObserveSubmission(string(domain.SubmissionKindUpload), "success", elapsed.Seconds())
	metrics.ObserveBackendResponse("upload", "2xx")
	log.Info("file uploaded",
		slog.String("submission_id", submission.ID),
		slog.Duration("elapsed", elapsed))

	return &SubmitResult{SubmissionID: submission.ID, Backend: response}, nil
}

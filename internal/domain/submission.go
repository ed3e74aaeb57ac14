package domain

import "time"

// SubmissionKind distinguishes the two backend-facing operations.
type SubmissionKind string

const (
	SubmissionKindForm   SubmissionKind = "form"
	SubmissionKindUpload SubmissionKind = "upload"
)

// SubmissionStatus is the lifecycle state of a submission attempt.
type SubmissionStatus string

const (
	// SubmissionStatusPending is set when the attempt is recorded, before the
	// backend call completes.
	SubmissionStatusPending SubmissionStatus = "pending"
	// SubmissionStatusSucceeded means the backend accepted the payload.
	SubmissionStatusSucceeded SubmissionStatus = "succeeded"
	// SubmissionStatusRejected means the backend answered with a non-2xx
	// status; BackendStatus carries the code.
	SubmissionStatusRejected SubmissionStatus = "rejected"
	// SubmissionStatusFailed means the request never produced an HTTP
	// response (transport failure).
	SubmissionStatusFailed SubmissionStatus = "failed"
)

// Submission is the audit record of one backend submission attempt. The
// gateway keeps one row per attempt; it never retries on the caller's behalf.
type Submission struct {
	ID            string           `json:"id"`
	Kind          SubmissionKind   `json:"kind"`
	Status        SubmissionStatus `json:"status"`
	RecordCount   int              `json:"record_count"`
	Filename      *string          `json:"filename,omitempty"`
	BackendStatus *int             `json:"backend_status,omitempty"`
	ErrorMessage  *string          `json:"error_message,omitempty"`
	RequestID     string           `json:"request_id"`
	CreatedAt     time.Time        `json:"created_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

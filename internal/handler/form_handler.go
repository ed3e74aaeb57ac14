// Package handler exposes the gateway over HTTP for the front-end
// collaborator: form submission, spreadsheet upload, submission audit lookup
// and the field catalog.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/backend"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/logger"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/middleware"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/service"
)

// FormHandler handles form submission HTTP requests.
type FormHandler struct {
	formService service.FormServiceInterface
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService service.FormServiceInterface) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// SubmitResponse is the success body of a form or upload submission.
type SubmitResponse struct {
	SubmissionID string                 `json:"submission_id"`
	Backend      map[string]interface{} `json:"backend,omitempty"`
}

// SubmissionResponse represents a submission audit record in the API response.
type SubmissionResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Status        string  `json:"status"`
	RecordCount   int     `json:"record_count"`
	Filename      *string `json:"filename,omitempty"`
	BackendStatus *int    `json:"backend_status,omitempty"`
	ErrorMessage  *string `json:"error_message,omitempty"`
	RequestID     string  `json:"request_id"`
	CreatedAt     string  `json:"created_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

// toSubmissionResponse converts a domain.Submission to a SubmissionResponse.
func toSubmissionResponse(s *domain.Submission) SubmissionResponse {
	response := SubmissionResponse{
		ID:            s.ID,
		Kind:          string(s.Kind),
		Status:        string(s.Status),
		RecordCount:   s.RecordCount,
		Filename:      s.Filename,
		BackendStatus: s.BackendStatus,
		ErrorMessage:  s.ErrorMessage,
		RequestID:     s.RequestID,
		CreatedAt:     s.CreatedAt.Format(TimeFormat),
	}
	if s.CompletedAt != nil {
		completedAt := s.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// SubmitForm handles POST /api/v1/forms
func (h *FormHandler) SubmitForm(c *gin.Context) {
	var session domain.FormSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	requestID := middleware.GetRequestID(c)
	result, err := h.formService.Submit(c.Request.Context(), requestID, &session)
	if err != nil {
		respondSubmitError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		SubmissionID: result.SubmissionID,
		Backend:      result.Backend,
	})
}

// GetSubmission handles GET /api/v1/submissions/:id
func (h *FormHandler) GetSubmission(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	submission, err := h.formService.GetSubmission(c.Request.Context(), id)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to get submission",
			slog.String("id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve submission"})
		return
	}

	if submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}

	c.JSON(http.StatusOK, toSubmissionResponse(submission))
}

// ListSubmissions handles GET /api/v1/submissions
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	submissions, err := h.formService.ListSubmissions(c.Request.Context(), limit)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to list submissions",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}

	responses := make([]SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, toSubmissionResponse(&submissions[i]))
	}

	c.JSON(http.StatusOK, gin.H{"submissions": responses})
}

// respondSubmitError maps pipeline errors onto HTTP responses. Local
// validation failures return the per-field map and count; classified backend
// failures and transport failures surface as a bad gateway with the message
// the front end shows verbatim.
func respondSubmitError(c *gin.Context, requestID string, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":      validationErr.Fields,
			"error_count": validationErr.Count(),
		})
		return
	}

	if errors.Is(err, service.ErrUnsupportedFileType) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":          apiErr.Message,
			"backend_status": apiErr.StatusCode,
		})
		return
	}

	logger.WithRequestID(requestID).Error("submission transport failure",
		slog.String("error", err.Error()))
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/middleware"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/service"
)

// UploadHandler handles spreadsheet upload HTTP requests.
type UploadHandler struct {
	uploadService service.UploadServiceInterface
	maxUploadSize int64
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadServiceInterface, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
	}
}

// Upload handles POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	requestID := middleware.GetRequestID(c)
	contentType := header.Header.Get("Content-Type")

	result, err := h.uploadService.Upload(c.Request.Context(), requestID, header.Filename, contentType, file)
	if err != nil {
		respondSubmitError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		SubmissionID: result.SubmissionID,
		Backend:      result.Backend,
	})
}

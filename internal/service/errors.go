package service

import (
	"errors"
	"fmt"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/validator"
)

// ErrUnsupportedFileType is returned by the upload MIME gate. Nothing is sent
// to the backend when it fires.
var ErrUnsupportedFileType = errors.New("unsupported file type: only Excel spreadsheets are accepted")

// ValidationError carries the per-field error map of a submission that failed
// local validation. It is fully recoverable: the caller fixes the fields and
// resubmits. Nothing reached the network.
type ValidationError struct {
	Fields validator.ErrorSet
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed: %d invalid field(s)", len(e.Fields))
}

// Count returns the aggregate number of failing fields.
func (e *ValidationError) Count() int {
	return len(e.Fields)
}

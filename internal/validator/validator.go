// Package validator checks form sessions against the field catalog before any
// payload is built: required common fields and URL-shaped record fields. All
// functions are pure and reentrant; nothing here performs I/O.
package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/catalog"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
)

var camelBoundary = regexp.MustCompile(`([A-Z])`)

// ErrorSet maps a field name to a human-readable message. It is recomputed
// wholesale on every validation pass, never merged across passes.
type ErrorSet map[string]string

// IsFormValid reports whether an error set is empty.
func IsFormValid(errors ErrorSet) bool {
	return len(errors) == 0
}

// FormatFieldName turns a camelCase field identifier into a readable label:
// spaces are inserted before uppercase letters and the first letter is
// capitalized ("newsThumbnailUrl" -> "News Thumbnail Url").
func FormatFieldName(name string) string {
	spaced := camelBoundary.ReplaceAllString(name, " $1")
	spaced = strings.TrimSpace(spaced)
	if spaced == "" {
		return ""
	}
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}

// ValidateField checks a single value for required-field presence. Returns
// the error message, or "" when the value is acceptable. Whitespace-only
// values count as empty.
func ValidateField(name, value string, required bool) string {
	if !required {
		return ""
	}
	if err := validation.Validate(strings.TrimSpace(value), validation.Required); err != nil {
		return fmt.Sprintf("%s is required", FormatFieldName(name))
	}
	return ""
}

// ValidateForm applies the required-field check to every mandatory common
// field, in catalog order. Only failing fields appear in the result.
func ValidateForm(common domain.CommonRecord) ErrorSet {
	errors := ErrorSet{}
	for _, name := range catalog.MandatoryFields {
		if msg := ValidateField(name, common.Field(name), true); msg != "" {
			errors[name] = msg
		}
	}
	return errors
}

// IsValidURL reports whether a value is an acceptable URL. Empty values are
// acceptable: emptiness is the required-field check's concern, not a URL
// error. Non-empty values must parse as absolute http or https URLs.
func IsValidURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ValidateURLField checks one URL-shaped field. Returns the error message, or
// "" when the value is empty or well-formed.
func ValidateURLField(name, value string) string {
	if strings.TrimSpace(value) != "" && !IsValidURL(value) {
		return fmt.Sprintf("%s must be a valid URL", FormatFieldName(name))
	}
	return ""
}

// ValidateURLFields runs the URL check over every descriptor flagged with
// ValidateURL that has a present, non-empty value in the record. Descriptors
// without the flag, or with absent values, are skipped.
func ValidateURLFields(record domain.Record, fields []catalog.FieldDescriptor) ErrorSet {
	errors := ErrorSet{}
	for _, field := range fields {
		if !field.ValidateURL {
			continue
		}
		value := record.Field(field.Name)
		if value == "" {
			continue
		}
		if msg := ValidateURLField(field.Name, value); msg != "" {
			errors[field.Name] = msg
		}
	}
	return errors
}

// ValidateSession validates a whole form session: the mandatory common fields
// plus the URL fields of every category record. Record-level errors are keyed
// "<category>[<index>].<field>" so the caller can address the failing row.
// Validation always completes fully before any transformation starts.
func ValidateSession(session *domain.FormSession) ErrorSet {
	errors := ValidateForm(session.Common)

	for i, r := range session.Records.News {
		mergeRecordErrors(errors, domain.CategoryNews, i, ValidateURLFields(r, catalog.NewsFields))
	}
	for i, r := range session.Records.Audio {
		mergeRecordErrors(errors, domain.CategoryAudio, i, ValidateURLFields(r, catalog.AudioFields))
	}
	for i, r := range session.Records.Events {
		mergeRecordErrors(errors, domain.CategoryEvents, i, ValidateURLFields(r, catalog.EventFields))
	}
	for i, r := range session.Records.Chat {
		mergeRecordErrors(errors, domain.CategoryChat, i, ValidateURLFields(r, catalog.ChatFields))
	}

	return errors
}

func mergeRecordErrors(into ErrorSet, category domain.Category, index int, recordErrors ErrorSet) {
	for field, msg := range recordErrors {
		into[fmt.Sprintf("%s[%d].%s", category, index, field)] = msg
	}
}

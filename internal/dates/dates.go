// Package dates converts date strings between the ISO form used by the form
// layer (yyyy-mm-dd), the dd/mm/yyyy display form and the backend wire form
// (dd-mm-yyyy hh:mm:ss). The converters only reshuffle string parts; they do
// not check calendar validity. A value like "2024-13-45" is reformatted as
// given. The backend owns that contract.
package dates

import (
	"fmt"
	"strings"
)

// FormatToDisplay converts an ISO date (yyyy-mm-dd) to dd/mm/yyyy. Empty or
// malformed input yields an empty string. Day and month are zero-padded.
func FormatToDisplay(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", pad2(parts[2]), pad2(parts[1]), parts[0])
}

// ParseDisplay converts a dd/mm/yyyy date back to ISO yyyy-mm-dd. Empty
// input, or input that does not split into exactly three parts, yields an
// empty string. FormatToDisplay and ParseDisplay are exact inverses for
// well-formed dates.
func ParseDisplay(displayDate string) string {
	if displayDate == "" {
		return ""
	}
	parts := strings.Split(displayDate, "/")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
}

// FormatForAPI converts an ISO date (yyyy-mm-dd) to the backend convention
// dd-mm-yyyy 00:00:00. The form has no time component, so the time of day is
// always midnight. Empty or malformed input yields an empty string.
func FormatForAPI(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s 00:00:00", parts[2], parts[1], parts[0])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

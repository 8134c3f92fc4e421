package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDirectory means the directory returned no candidates at all.
	ErrEmptyDirectory = errors.New("no therapists found in the directory")

	// ErrParse wraps failures to interpret the model reply as a JSON array.
	ErrParse = errors.New("failed to parse therapist matches")
)

// UpstreamError reports a failed call to an external service. Status and Body
// are set when the failure was a non-2xx HTTP response.
type UpstreamError struct {
	Status  int
	Body    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("upstream error: status=%d body=%s", e.Status, e.Body)
	}
	return "upstream error: " + e.Message
}

// ShapeError reports the first element of the parsed model reply that lacks a
// required id, name or reason field.
type ShapeError struct {
	Index int
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid match at index %d: missing required fields", e.Index)
}

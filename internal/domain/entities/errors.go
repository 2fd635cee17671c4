package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedReference is returned for identifiers that are not "owner/name".
	ErrMalformedReference = errors.New("malformed repository reference")
	// ErrNotFound is returned when the remote API reports a missing repository.
	ErrNotFound = errors.New("repository not found")
	// ErrRateLimited is returned when the remote API quota is exhausted.
	ErrRateLimited = errors.New("API rate limit exceeded")
	// ErrTransport covers any other non-success response or network failure.
	ErrTransport = errors.New("remote API request failed")
	// ErrDownloadFailed is returned when an asset download does not succeed.
	ErrDownloadFailed = errors.New("asset download failed")
	// ErrExtraction is returned when an archive cannot be unpacked.
	ErrExtraction = errors.New("archive extraction failed")
	// ErrIO is returned when the scratch space cannot be allocated.
	ErrIO = errors.New("scratch space allocation failed")
)

// ExtractionError carries the diagnostic output of the host extraction tool.
type ExtractionError struct {
	Archive string
	Output  string
	Err     error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrExtraction, e.Archive)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += " (" + out + ")"
	}
	return msg
}

// Unwrap lets errors.Is match both ErrExtraction and the underlying cause.
func (e *ExtractionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExtraction}
	}
	return []error{ErrExtraction, e.Err}
}

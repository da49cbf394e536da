package resolve

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// InvalidInput is a caller mistake, rejected before any outbound call.
	InvalidInput Kind = iota
	// ExtractionFailed means the engine ran but the target is not
	// resolvable (blocked, removed, or no playable stream).
	ExtractionFailed
	// BackendUnavailable means the delegated extraction worker could
	// not be reached or answered garbage. Transient.
	BackendUnavailable
	// Unexpected is the catch-all; surfaced with minimal detail.
	Unexpected
)

const (
	NoBodyMessage   = "No JSON body provided"
	NoURLMessage    = "No 'url' field provided"
	BlockedMessage  = "Download failed — video may be blocked or unavailable."
	WorkerMessage   = "Worker request failed"
	unexpectedLabel = "Unexpected error: "
)

// Error is the classified failure of one resolution. Every failure path
// crossing the pipeline boundary is one of these; nothing raw leaks to
// the response mapper.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}

	return e.Message
}

// Status maps the error kind to the caller-facing HTTP status.
func (e *Error) Status() int {
	switch e.Kind {
	case InvalidInput, ExtractionFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Body builds the wire error object. Always valid JSON with at least an
// "error" field; never a stack trace.
func (e *Error) Body() map[string]string {
	switch e.Kind {
	case InvalidInput:
		return map[string]string{"error": e.Message}
	case Unexpected:
		return map[string]string{"error": unexpectedLabel + e.Message}
	default:
		body := map[string]string{"error": e.Message}
		if e.Detail != "" {
			body["details"] = e.Detail
		}
		return body
	}
}

func Invalid(message string) *Error {
	return &Error{Kind: InvalidInput, Message: message}
}

// AsError converts any failure into a classified *Error, wrapping
// anything unrecognized as Unexpected.
func AsError(err error) *Error {
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr
	}

	return &Error{Kind: Unexpected, Message: err.Error()}
}

// Package apperrors defines the failure taxonomy shared by the PDF extractor,
// the generation dispatcher and the HTTP/CLI surfaces.
//
// Go Pattern: Sentinel errors. Each failure class is a package-level error
// value, and the code that detects a failure wraps it with fmt.Errorf("%w").
// Callers classify with errors.Is — no type switches on concrete structs.
package apperrors

import (
	"errors"
	"strings"
)

var (
	ErrMissingDocument       = errors.New("no resume uploaded")
	ErrMissingJobDescription = errors.New("job description is empty")
	ErrUnknownMode           = errors.New("unknown analysis mode")
	ErrMalformedDocument     = errors.New("resume is not a readable PDF")
	ErrServiceExhausted      = errors.New("generation service is temporarily overloaded")
	ErrRemote                = errors.New("generation service error")
)

// Kind is a stable, machine-readable name for a failure class.
// It doubles as the "error" field of API error responses.
type Kind string

const (
	KindNone                  Kind = ""
	KindMissingDocument       Kind = "missing_document"
	KindMissingJobDescription Kind = "missing_job_description"
	KindUnknownMode           Kind = "unknown_mode"
	KindMalformedDocument     Kind = "malformed_document"
	KindServiceExhausted      Kind = "service_exhausted"
	KindRemote                Kind = "remote_error"
	KindInternal              Kind = "internal_error"
)

// KindOf classifies err. Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingDocument):
		return KindMissingDocument
	case errors.Is(err, ErrMissingJobDescription):
		return KindMissingJobDescription
	case errors.Is(err, ErrUnknownMode):
		return KindUnknownMode
	case errors.Is(err, ErrMalformedDocument):
		return KindMalformedDocument
	case errors.Is(err, ErrServiceExhausted):
		return KindServiceExhausted
	case errors.Is(err, ErrRemote):
		return KindRemote
	default:
		return KindInternal
	}
}

// IsWarning reports whether err is an input problem the user can fix
// locally, as opposed to a processing failure.
func IsWarning(err error) bool {
	k := KindOf(err)
	return k == KindMissingDocument || k == KindMissingJobDescription
}

// UserMessage returns the text shown to the person using the form or CLI.
// Remote errors carry the raw detail; everything else is a fixed sentence.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindNone:
		return ""
	case KindMissingDocument:
		return "Please upload your resume to proceed."
	case KindMissingJobDescription:
		return "Please enter the job description to proceed."
	case KindUnknownMode:
		return "Unknown action. Choose one of the available analysis buttons."
	case KindMalformedDocument:
		return "The uploaded file could not be read as a PDF. Please upload a valid PDF resume."
	case KindServiceExhausted:
		return "The AI service is temporarily overloaded. Please wait a moment and try again."
	case KindRemote:
		return "An error occurred while contacting the AI service: " + detail(err, ErrRemote)
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}

// detail strips the sentinel's own text from the front of err's message so
// the user sees the underlying cause once.
func detail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}

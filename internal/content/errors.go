package content

import (
	"errors"
	"fmt"
)

// Code classifies a failure in the content pipeline.
type Code string

const (
	MissingCredential  Code = "missing_credential"
	InvalidCredential  Code = "invalid_credential"
	QuotaExceeded      Code = "quota_exceeded"
	DuplicateItem      Code = "duplicate_item"
	InvalidInput       Code = "invalid_input"
	GenerationFailed   Code = "generation_failed"
	StorageUnavailable Code = "storage_unavailable"
	NoContent          Code = "no_content"
	NoPendingCandidate Code = "no_pending_candidate"
	Busy               Code = "busy"
	Stale              Code = "stale"
	Unknown            Code = "unknown"
)

// Error is the typed failure returned across the content, review and game
// boundaries.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error without a cause.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Invalidf reports malformed input. The detail is kept for logs while
// Message falls back to the friendly default.
func Invalidf(format string, args ...any) *Error {
	return &Error{Code: InvalidInput, Err: fmt.Errorf(format, args...)}
}

// Wrap builds an *Error around a cause. A nil cause yields nil.
func Wrap(code Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code carried by err. Nil maps to the empty code and
// errors that were never classified map to Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return Unknown
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Message renders err as a short sentence suitable for a child's parent.
// Credential problems point at the settings area.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *Error
	errors.As(err, &ce)

	switch CodeOf(err) {
	case MissingCredential:
		return "Add an API key in Settings to create new pictures."
	case InvalidCredential:
		return "The API key was not accepted. Check it in Settings."
	case QuotaExceeded:
		return "The picture service is busy or out of quota. Try again later."
	case DuplicateItem:
		if ce != nil && ce.Message != "" {
			return ce.Message
		}
		return "That one is already in the game!"
	case InvalidInput:
		if ce != nil && ce.Message != "" {
			return ce.Message
		}
		return "Please type a name using letters."
	case GenerationFailed:
		return "No picture came back. Please try again."
	case StorageUnavailable:
		return "Saved games could not be reached. Please try again."
	case NoContent:
		if ce != nil && ce.Message != "" {
			return ce.Message
		}
		return "Nothing to play yet. Add some in Settings."
	case NoPendingCandidate:
		return "There is nothing waiting for review."
	case Busy:
		return "Still working on the last request."
	case Stale:
		return "That result was replaced by a newer one."
	}
	return "Something went wrong. Please try again."
}

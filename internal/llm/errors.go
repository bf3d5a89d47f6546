package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrAuth indicates the provider rejected the credential (401/403, or a
// 400 complaining about the API key).
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("LLM credential rejected: %v", e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrMissingAPIKey indicates no credential is configured for the provider.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrQuotaExceeded indicates the account ran out of quota or credit. It is
// not retried, unlike a plain rate limit.
type ErrQuotaExceeded struct {
	Err error
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("LLM quota exceeded: %v", e.Err)
}

func (e *ErrQuotaExceeded) Unwrap() error { return e.Err }

// ErrNoImage indicates the provider answered without an image payload.
type ErrNoImage struct {
	Reason string
}

func (e *ErrNoImage) Error() string {
	if e.Reason != "" {
		return "no image in response: " + e.Reason
	}
	return "no image in response"
}

// ErrUnsupported indicates the provider cannot perform the operation,
// e.g. image generation on a text-only backend.
type ErrUnsupported struct {
	Provider  string
	Operation string
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Provider, e.Operation)
}

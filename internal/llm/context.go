package llm

import "context"

// PurposeCredentialCheck labels the tiny request that validates an API key.
const PurposeCredentialCheck = "credential-check"

// SuggestPurpose labels the text request that names a new item of a
// content kind, e.g. "words-suggest".
func SuggestPurpose(kind string) string { return kind + "-suggest" }

// ImagePurpose labels the request that draws an item, e.g. "colors-image".
func ImagePurpose(kind string) string { return kind + "-image" }

type purposeKey struct{}

// WithPurpose attaches a purpose label to ctx for the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

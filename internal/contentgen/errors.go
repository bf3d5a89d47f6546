package contentgen

import (
	"context"
	"errors"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/llm"
)

// classify maps a generative-service failure onto the content taxonomy.
// Errors that already carry a content code pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ce *content.Error
	if errors.As(err, &ce) {
		return err
	}

	var (
		missing *llm.ErrMissingAPIKey
		auth    *llm.ErrAuth
		quota   *llm.ErrQuotaExceeded
		rate    *llm.ErrRateLimit
		noImage *llm.ErrNoImage
		invalid *llm.ErrInvalidResponse
		tokens  *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.As(err, &missing):
		return content.Wrap(content.MissingCredential, err, "no API key configured")
	case errors.As(err, &auth):
		return content.Wrap(content.InvalidCredential, err, "API key rejected")
	case errors.As(err, &quota), errors.As(err, &rate):
		return content.Wrap(content.QuotaExceeded, err, "service quota exceeded")
	case errors.As(err, &noImage):
		return content.Wrap(content.GenerationFailed, err, "no image returned")
	case errors.As(err, &invalid), errors.As(err, &tokens):
		return content.Wrap(content.GenerationFailed, err, "unusable suggestion")
	case errors.Is(err, context.DeadlineExceeded):
		return content.Wrap(content.Unknown, err, "generation timed out")
	}
	return content.Wrap(content.Unknown, err, "generation failed")
}

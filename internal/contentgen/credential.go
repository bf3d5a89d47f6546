package contentgen

import (
	"context"
	"strings"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/llm"
)

// CredentialStatus is the outcome of a credential check.
type CredentialStatus struct {
	OK      bool
	Code    content.Code
	Message string
}

// ValidateCredential makes one tiny text request to confirm secret is
// usable. An empty secret checks the credential currently in effect.
// Failures are reported in the status, never as an error.
func (g *Generator) ValidateCredential(ctx context.Context, secret string) CredentialStatus {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	ctx = llm.WithPurpose(ctx, llm.PurposeCredentialCheck)

	var (
		text llm.Provider
		err  error
	)
	secret = strings.TrimSpace(secret)
	if checker, ok := g.backend.(KeyChecker); ok && secret != "" {
		text, err = checker.ProviderWithKey(ctx, secret)
	} else {
		text, _, err = g.backend.Clients(ctx)
	}
	if err != nil {
		return failed(classify(err))
	}

	_, err = text.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: pingPrompt}},
		MaxTokens: 5,
	})
	if err != nil {
		return failed(classify(err))
	}
	return CredentialStatus{OK: true, Message: "API key is valid."}
}

func failed(err error) CredentialStatus {
	return CredentialStatus{Code: content.CodeOf(err), Message: content.Message(err)}
}

package settings

import (
	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/contentgen"
)

// ContentChangedMsg tells the screen a catalog collection changed.
type ContentChangedMsg struct {
	Kind content.Kind
}

// generatedMsg carries the result of a generation request.
type generatedMsg struct {
	kind      content.Kind
	candidate *contentgen.Candidate
	err       error
}

// approvedMsg carries the result of committing the pending candidate.
type approvedMsg struct {
	kind      content.Kind
	candidate *contentgen.Candidate
	err       error
}

// deletedMsg carries the result of removing a catalog item.
type deletedMsg struct {
	kind content.Kind
	key  string
	err  error
}

// itemsMsg carries a fresh read of one collection.
type itemsMsg struct {
	kind  content.Kind
	items []content.Item
	err   error
}

// credentialMsg carries the outcome of a credential check or change.
type credentialMsg struct {
	status contentgen.CredentialStatus
	stored bool
}

// keyStateMsg reports whether a credential is stored in settings.
type keyStateMsg struct {
	stored bool
	err    error
}

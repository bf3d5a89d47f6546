// Package review holds generated candidates until a parent approves or
// rejects them. Each content kind has a single slot; a new candidate
// replaces whatever was waiting.
package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/contentgen"
)

// Generator produces candidates. *contentgen.Generator satisfies it.
type Generator interface {
	Random(ctx context.Context, kind content.Kind) (*contentgen.Candidate, error)
	For(ctx context.Context, kind content.Kind, name, color string) (*contentgen.Candidate, error)
}

// Store is the write side of the catalog. *catalog.Catalog satisfies it
// and notifies its subscribers on every change.
type Store interface {
	Put(ctx context.Context, item content.Item) error
	Delete(ctx context.Context, kind content.Kind, key string) error
}

// Request asks for one candidate. An empty Name requests a random one.
type Request struct {
	Kind  content.Kind
	Name  string
	Color string
}

type slot struct {
	pending *contentgen.Candidate

	// owner is the ticket allowed to fill the slot. Staging or starting a
	// new generation replaces it, so late results from older tickets are
	// dropped.
	owner string

	// inflight is the ticket of the generation currently running.
	inflight string
}

// Workflow is the review staging area.
type Workflow struct {
	gen   Generator
	store Store

	mu    sync.Mutex
	slots map[content.Kind]*slot
}

// New creates a Workflow.
func New(gen Generator, store Store) *Workflow {
	return &Workflow{gen: gen, store: store, slots: make(map[content.Kind]*slot)}
}

func (w *Workflow) slot(kind content.Kind) *slot {
	s, ok := w.slots[kind]
	if !ok {
		s = &slot{}
		w.slots[kind] = s
	}
	return s
}

// Stage puts c in its kind's slot, discarding any pending candidate and
// any result still being generated.
func (w *Workflow) Stage(c *contentgen.Candidate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.slot(c.Kind)
	s.pending = c
	s.owner = uuid.NewString()
}

// Pending returns the candidate waiting for review, or nil.
func (w *Workflow) Pending(kind content.Kind) *contentgen.Candidate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.slot(kind).pending
}

// Busy reports whether a generation is running for kind.
func (w *Workflow) Busy(kind content.Kind) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.slot(kind).inflight != ""
}

// Generate requests a candidate and stages it. The pending candidate is
// discarded when the request starts. A second request for the same kind
// while one is running fails with Busy. If the slot was restaged before
// the result arrived, the result is dropped and Stale is returned.
func (w *Workflow) Generate(ctx context.Context, req Request) (*contentgen.Candidate, error) {
	ticket, err := w.begin(req.Kind)
	if err != nil {
		return nil, err
	}

	var c *contentgen.Candidate
	if req.Name == "" && req.Color == "" {
		c, err = w.gen.Random(ctx, req.Kind)
	} else {
		c, err = w.gen.For(ctx, req.Kind, req.Name, req.Color)
	}

	return w.finish(req.Kind, ticket, c, err)
}

func (w *Workflow) begin(kind content.Kind) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.slot(kind)
	if s.inflight != "" {
		return "", content.Errorf(content.Busy, "already generating %s", kind)
	}
	ticket := uuid.NewString()
	s.inflight = ticket
	s.owner = ticket
	s.pending = nil
	return ticket, nil
}

func (w *Workflow) finish(kind content.Kind, ticket string, c *contentgen.Candidate, err error) (*contentgen.Candidate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.slot(kind)
	if s.inflight == ticket {
		s.inflight = ""
	}
	if s.owner != ticket {
		return nil, content.Errorf(content.Stale, "%s result superseded", kind)
	}
	if err != nil {
		return nil, err
	}
	s.pending = c
	return c, nil
}

// Approve commits the pending candidate to the catalog and clears the
// slot. The candidate stays pending if the write fails.
func (w *Workflow) Approve(ctx context.Context, kind content.Kind) (*contentgen.Candidate, error) {
	w.mu.Lock()
	c := w.slot(kind).pending
	w.mu.Unlock()

	if c == nil {
		return nil, content.Errorf(content.NoPendingCandidate, "no %s candidate to approve", kind)
	}

	// The store notifies subscribers synchronously, so it is called
	// without holding mu.
	if err := w.store.Put(ctx, c.Item()); err != nil {
		return nil, err
	}

	w.mu.Lock()
	if s := w.slot(kind); s.pending == c {
		s.pending = nil
	}
	w.mu.Unlock()
	return c, nil
}

// Reject discards the pending candidate.
func (w *Workflow) Reject(kind content.Kind) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.slot(kind)
	if s.pending == nil {
		return content.Errorf(content.NoPendingCandidate, "no %s candidate to reject", kind)
	}
	s.pending = nil
	return nil
}

// Delete removes an approved item from the catalog. Callers confirm with
// the user first.
func (w *Workflow) Delete(ctx context.Context, kind content.Kind, key string) error {
	return w.store.Delete(ctx, kind, key)
}

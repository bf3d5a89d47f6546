// Package catalog is the content store service used by the game and the
// review workflow. It wraps the persistent collections and notifies
// subscribers whenever approved content changes.
package catalog

import (
	"context"
	"sync"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/store"
)

// Op describes what happened to an item.
type Op string

const (
	OpPut    Op = "put"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
)

// Change is delivered to subscribers after a successful write.
type Change struct {
	Kind content.Kind
	Key  string
	Op   Op
}

// Catalog is the content store service.
type Catalog struct {
	repo store.CatalogRepo

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Change)
}

// New creates a Catalog over the given repository.
func New(repo store.CatalogRepo) *Catalog {
	return &Catalog{repo: repo, subs: make(map[int]func(Change))}
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription. Callbacks run synchronously on the
// writer's goroutine and must not block.
func (c *Catalog) Subscribe(fn func(Change)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Catalog) notify(ch Change) {
	c.mu.Lock()
	fns := make([]func(Change), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}

// Get returns the item with key, or nil if absent. The key is normalized
// before the lookup.
func (c *Catalog) Get(ctx context.Context, kind content.Kind, key string) (content.Item, error) {
	return c.repo.Get(ctx, kind, content.Normalize(key))
}

// Has reports whether key is present in the collection.
func (c *Catalog) Has(ctx context.Context, kind content.Kind, key string) (bool, error) {
	it, err := c.repo.Get(ctx, kind, content.Normalize(key))
	if err != nil {
		return false, err
	}
	return it != nil, nil
}

// All returns a snapshot of the collection ordered by key.
func (c *Catalog) All(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	return c.repo.GetAll(ctx, kind)
}

// Keys returns the identities in the collection, ordered.
func (c *Catalog) Keys(ctx context.Context, kind content.Kind) ([]string, error) {
	return c.repo.Keys(ctx, kind)
}

// Count returns the size of the collection.
func (c *Catalog) Count(ctx context.Context, kind content.Kind) (int, error) {
	return c.repo.Count(ctx, kind)
}

// Put inserts or replaces item and notifies subscribers.
func (c *Catalog) Put(ctx context.Context, item content.Item) error {
	if err := c.repo.Put(ctx, item); err != nil {
		return err
	}
	c.notify(Change{Kind: item.Kind(), Key: item.Key(), Op: OpPut})
	return nil
}

// Delete removes key from the collection and notifies subscribers.
// Deleting an absent key succeeds.
func (c *Catalog) Delete(ctx context.Context, kind content.Kind, key string) error {
	key = content.Normalize(key)
	if err := c.repo.Delete(ctx, kind, key); err != nil {
		return err
	}
	c.notify(Change{Kind: kind, Key: key, Op: OpDelete})
	return nil
}

// Clear empties the collection and notifies subscribers.
func (c *Catalog) Clear(ctx context.Context, kind content.Kind) error {
	if err := c.repo.Clear(ctx, kind); err != nil {
		return err
	}
	c.notify(Change{Kind: kind, Op: OpClear})
	return nil
}

// Words returns every approved word.
func (c *Catalog) Words(ctx context.Context) ([]content.WordItem, error) {
	items, err := c.repo.GetAll(ctx, content.Words)
	if err != nil {
		return nil, err
	}
	return typed[content.WordItem](items), nil
}

// CountingItems returns every approved counting item.
func (c *Catalog) CountingItems(ctx context.Context) ([]content.CountingItem, error) {
	items, err := c.repo.GetAll(ctx, content.CountingItems)
	if err != nil {
		return nil, err
	}
	return typed[content.CountingItem](items), nil
}

// ColorItems returns every approved color item.
func (c *Catalog) ColorItems(ctx context.Context) ([]content.ColorItem, error) {
	items, err := c.repo.GetAll(ctx, content.ColorItems)
	if err != nil {
		return nil, err
	}
	return typed[content.ColorItem](items), nil
}

func typed[T content.Item](items []content.Item) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if v, ok := it.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

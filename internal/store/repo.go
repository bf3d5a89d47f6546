package store

import (
	"context"
	"time"

	"github.com/abhisek/sprouts/internal/content"
)

// CatalogRepo persists the approved content collections. Every failure is
// reported as a content.StorageUnavailable error except item validation,
// which reports content.InvalidInput.
type CatalogRepo interface {
	// Get returns the item with the given key, or nil if absent.
	Get(ctx context.Context, kind content.Kind, key string) (content.Item, error)

	// GetAll returns every item of the collection ordered by key.
	GetAll(ctx context.Context, kind content.Kind) ([]content.Item, error)

	// Keys returns every key of the collection in order, without images.
	Keys(ctx context.Context, kind content.Kind) ([]string, error)

	// Put inserts or replaces the item by identity.
	Put(ctx context.Context, item content.Item) error

	// Delete removes the item with the given key. Absent keys are not an error.
	Delete(ctx context.Context, kind content.Kind, key string) error

	// Count returns the number of items in the collection.
	Count(ctx context.Context, kind content.Kind) (int, error)

	// Clear removes every item of the collection.
	Clear(ctx context.Context, kind content.Kind) error
}

// SettingsRepo is a small key/value store for preferences, the stored
// API credential and the leaderboards.
type SettingsRepo interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Absent keys are not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int       // id > After
	Before  int       // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RequestID    string
	Kind         string // "text" or "image"
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions in the same shape ent generates for its migrate
// package. Adding a table or a nullable column here is picked up by the
// next Open; nothing is ever dropped.
var (
	wordsColumns = []*schema.Column{
		{Name: "word", Type: field.TypeString, Unique: true},
		{Name: "image", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	wordsTable = &schema.Table{
		Name:       "words",
		Columns:    wordsColumns,
		PrimaryKey: []*schema.Column{wordsColumns[0]},
	}

	countingItemsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "image", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	countingItemsTable = &schema.Table{
		Name:       "counting_items",
		Columns:    countingItemsColumns,
		PrimaryKey: []*schema.Column{countingItemsColumns[0]},
	}

	colorItemsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "color", Type: field.TypeString},
		{Name: "image", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	colorItemsTable = &schema.Table{
		Name:       "color_items",
		Columns:    colorItemsColumns,
		PrimaryKey: []*schema.Column{colorItemsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "coloritem_color", Columns: []*schema.Column{colorItemsColumns[1]}},
		},
	}

	settingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	settingsTable = &schema.Table{
		Name:       "settings",
		Columns:    settingsColumns,
		PrimaryKey: []*schema.Column{settingsColumns[0]},
	}

	llmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString, Default: "text"},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmRequestEventsColumns[6]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{llmRequestEventsColumns[10]}},
		},
	}

	tables = []*schema.Table{
		wordsTable,
		countingItemsTable,
		colorItemsTable,
		settingsTable,
		llmRequestEventsTable,
	}
)

func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

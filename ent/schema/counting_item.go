package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CountingItem is an approved object used for counting questions.
type CountingItem struct {
	ent.Schema
}

func (CountingItem) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedMixin{}}
}

func (CountingItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable(),
		field.Text("image").
			Comment("Picture of a single object as a data URI"),
	}
}

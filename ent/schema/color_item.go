package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ColorItem is an approved object shown in a single named color.
type ColorItem struct {
	ent.Schema
}

func (ColorItem) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedMixin{}}
}

func (ColorItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable(),
		field.String("color").
			Comment("One of the palette color names"),
		field.Text("image"),
	}
}

func (ColorItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("color"),
	}
}

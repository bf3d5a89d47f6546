package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Word is an approved spelling word with its picture.
type Word struct {
	ent.Schema
}

func (Word) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedMixin{}}
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("word").
			Unique().
			Immutable().
			Comment("Lowercase letters only, 3 to 6 long"),
		field.Text("image").
			Comment("Picture as a data URI"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResolutionEvent records one pass through the answer pipeline: which
// stage produced the answer, how the question was classified, and how
// long the whole resolution took.
type ResolutionEvent struct {
	ent.Schema
}

func (ResolutionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResolutionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("UUID for correlating with logs"),
		field.String("question").
			Comment("Original question text as received"),
		field.String("source").
			Comment("Stage that answered: memory, dataset, solver, ai_math, ai"),
		field.String("category").
			Default("unknown").
			Comment("Math classifier output"),
		field.String("language").
			Default("").
			Comment("Language used for the answer, e.g. Hindi"),
		field.Bool("success").
			Comment("Whether a usable answer was produced"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the whole resolution"),
	}
}

func (ResolutionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
		index.Fields("success"),
	}
}

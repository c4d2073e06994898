package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RetryAttempt holds the schema definition for one audited retry event.
type RetryAttempt struct {
	ent.Schema
}

// Fields of the RetryAttempt.
func (RetryAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id"),
		field.Int("attempt_number"),
		field.Float("delay_seconds"),
		field.String("reason"),
		field.String("failed_execution_id"),
	}
}

// Edges of the RetryAttempt.
func (RetryAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", SwarmRun.Type).
			Ref("retry_attempts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RetryAttempt.
func (RetryAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_id"),
	}
}

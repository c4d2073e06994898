package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for a finding produced by an
// agent execution.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("agent_id"),
		field.JSON("content", map[string]any{}).
			Optional(),
		field.Float("confidence"),
		field.String("evidence_type"),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", AgentExecution.Type).
			Ref("evidences").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id"),
		index.Fields("agent_id"),
	}
}

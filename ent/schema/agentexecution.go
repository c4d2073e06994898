package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for one auditable agent
// execution within a run.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("agent_id"),
		field.String("agent_version"),
		field.String("logic_hash").
			Comment("Digest of the agent's logic, for drift detection across replays"),
		field.String("step_id"),
		field.Int("ordinal").
			Comment("Append order within the run; replay depends on it"),
		field.JSON("input_parameters", map[string]any{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("finished_at"),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", SwarmRun.Type).
			Ref("executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evidences", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("step_id"),
		index.Fields("agent_id"),
	}
}

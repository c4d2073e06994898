package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RetryDecision holds the schema definition for the policy rationale
// behind a retry. Policies are identified by name/version/logicHash;
// replay reconstructs them from the registry.
type RetryDecision struct {
	ent.Schema
}

// Fields of the RetryDecision.
func (RetryDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("retry_decision_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id"),
		field.String("attempt_id"),
		field.String("reason"),
		field.String("policy_name"),
		field.String("policy_version"),
		field.String("policy_logic_hash"),
	}
}

// Edges of the RetryDecision.
func (RetryDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", SwarmRun.Type).
			Ref("retry_decisions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RetryDecision.
func (RetryDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_id"),
	}
}

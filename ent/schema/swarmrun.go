package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/swarmops/swarmsre/pkg/models"
)

// SwarmRun holds the schema definition for a persisted swarm run.
// Runs are written once, after all executions have terminated.
type SwarmRun struct {
	ent.Schema
}

// Fields of the SwarmRun.
func (SwarmRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.JSON("domain", models.Domain{}),
		field.JSON("plan", models.SwarmPlan{}),
		field.Int64("master_seed").
			Immutable(),
		field.String("status").
			Comment("Terminal status: FINISHED or ABORTED_BY_LIMIT"),
		field.JSON("run_metadata", models.RunMetadata{}),
		field.String("alert_id"),
		field.JSON("alert_data", map[string]any{}).
			Optional(),
		field.Time("started_at"),
		field.Time("finished_at"),
	}
}

// Edges of the SwarmRun.
func (SwarmRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("retry_attempts", RetryAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("retry_decisions", RetryDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("decision", Decision.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SwarmRun.
func (SwarmRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_id"),
		index.Fields("status"),
	}
}

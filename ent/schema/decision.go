package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Decision holds the schema definition for a run's final decision.
type Decision struct {
	ent.Schema
}

// Fields of the Decision.
func (Decision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("state"),
		field.String("action_proposed").
			Optional(),
		field.Float("confidence"),
		field.String("justification"),
		field.JSON("rules_applied", []string{}).
			Optional(),
		field.JSON("semantic_evidence", []models.SemanticEvidence{}).
			Optional(),
		field.Bool("llm_contribution").
			Default(false),
		field.String("llm_reason").
			Optional().
			Nillable(),
		field.JSON("decision_metadata", map[string]any{}).
			Optional(),
		field.Time("created_at"),
	}
}

// Edges of the Decision.
func (Decision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", SwarmRun.Type).
			Ref("decision").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("human_override", HumanOverride.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/swarmops/swarmsre/pkg/models"
)

// HumanOverride holds the schema definition for a human verdict on a
// decision, with the operational outcome recorded alongside.
type HumanOverride struct {
	ent.Schema
}

// Fields of the HumanOverride.
func (HumanOverride) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("override_id").
			Unique().
			Immutable(),
		field.String("decision_id").
			Immutable(),
		field.String("action"),
		field.String("author"),
		field.String("override_reason").
			Optional(),
		field.String("overridden_action").
			Optional(),
		field.JSON("outcome", models.OperationalOutcome{}).
			Optional(),
		field.Time("created_at"),
	}
}

// Edges of the HumanOverride.
func (HumanOverride) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("decision", Decision.Type).
			Ref("human_override").
			Field("decision_id").
			Unique().
			Required().
			Immutable(),
	}
}

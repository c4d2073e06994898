package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConfidenceSnapshot holds the schema definition for an append-only
// agent credibility record. Snapshots are never updated or deleted.
type ConfidenceSnapshot struct {
	ent.Schema
}

// Fields of the ConfidenceSnapshot.
func (ConfidenceSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Float("value"),
		field.String("source_event").
			Comment("time_decay, human_override, successful_outcome or initial"),
		field.Int64("sequence_id").
			Immutable(),
		field.String("cause_ref").
			Optional(),
		field.String("cause_type").
			Optional(),
		field.Time("created_at"),
	}
}

// Indexes of the ConfidenceSnapshot.
func (ConfidenceSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		// At most one snapshot per agent and sequence id.
		index.Fields("agent_id", "sequence_id").
			Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Procedure holds the schema definition for a known remediation
// procedure, looked up by alert signature on intake.
type Procedure struct {
	ent.Schema
}

// Fields of the Procedure.
func (Procedure) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signature").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional(),
		field.String("runbook_url").
			Optional(),
	}
}

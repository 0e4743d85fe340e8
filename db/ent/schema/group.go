package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/db/ent/schema/utils"
)

type Group struct{ ent.Schema }

func (Group) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "groups"},
	}
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// May be empty until identifier extraction settles.
		field.String("customer_id").Optional().Default("").
			Validate(utils.DigitsValidator()),
		field.UUID("owner_id", uuid.UUID{}),
		field.Int("document_count").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE group -> MANY documents
		edge.To("documents", Document.Type),
		// MANY groups -> ONE user (FK: groups.owner_id)
		edge.From("owner", User.Type).
			Ref("groups").
			Field("owner_id").
			Required().
			Unique(),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		// Prefix-range scans for customer-id search.
		index.Fields("customer_id"),
		index.Fields("owner_id"),
	}
}

// Package repository defines the persistence gateway contracts. Records
// are keyed by opaque ids; upsert merges into an existing record and
// refreshes updated_at, or creates it with created_at = updated_at =
// now. Drivers live in the entdb and memdb subpackages.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Document, error)
	Upsert(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByGroup removes every document of a group and reports how
	// many records were deleted.
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

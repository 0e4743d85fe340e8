package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/entity"
)

type GroupRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	List(ctx context.Context) ([]*entity.Group, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error)
	// SearchByCustomerPrefix matches groups whose customer id starts
	// with prefix, the query-by-field-prefix-range used by search.
	SearchByCustomerPrefix(ctx context.Context, prefix string) ([]*entity.Group, error)
	Upsert(ctx context.Context, group *entity.Group) (*entity.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

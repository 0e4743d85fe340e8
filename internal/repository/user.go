package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package entdb

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/gen/ent"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
)

type userRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUserRepository(entc *ent.Client, logger *slog.Logger) repository.UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepo{ent: entc, logger: logger}
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := r.ent.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toUser(row), nil
}

func (r *userRepo) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	existing, err := r.ent.User.Get(ctx, user.ID)
	switch {
	case ent.IsNotFound(err):
		row, err := r.ent.User.Create().
			SetID(user.ID).
			SetDisplayName(user.DisplayName).
			SetEmail(user.Email).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create user", "user_id", user.ID, "error", err)
			return nil, err
		}
		return toUser(row), nil
	case err != nil:
		return nil, err
	default:
		row, err := r.ent.User.UpdateOne(existing).
			SetDisplayName(user.DisplayName).
			SetEmail(user.Email).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update user", "user_id", user.ID, "error", err)
			return nil, err
		}
		return toUser(row), nil
	}
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.User.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func toUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:          e.ID,
		DisplayName: e.DisplayName,
		Email:       e.Email,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

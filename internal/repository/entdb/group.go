package entdb

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/gen/ent"
	entgroup "github.com/scanvault/scanvault/gen/ent/group"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
)

type groupRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewGroupRepository(entc *ent.Client, logger *slog.Logger) repository.GroupRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &groupRepo{ent: entc, logger: logger}
}

func (r *groupRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	row, err := r.ent.Group.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toGroup(row), nil
}

func (r *groupRepo) List(ctx context.Context) ([]*entity.Group, error) {
	rows, err := r.ent.Group.Query().
		Order(entgroup.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list groups", "error", err)
		return nil, err
	}
	return toGroups(rows), nil
}

func (r *groupRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	rows, err := r.ent.Group.Query().
		Where(entgroup.OwnerID(ownerID)).
		Order(entgroup.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list groups by owner", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return toGroups(rows), nil
}

func (r *groupRepo) SearchByCustomerPrefix(ctx context.Context, prefix string) ([]*entity.Group, error) {
	if prefix == "" {
		return nil, nil
	}
	rows, err := r.ent.Group.Query().
		Where(entgroup.CustomerIDHasPrefix(prefix)).
		Order(entgroup.ByCustomerID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search groups", "prefix", prefix, "error", err)
		return nil, err
	}
	return toGroups(rows), nil
}

func (r *groupRepo) Upsert(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	existing, err := r.ent.Group.Get(ctx, group.ID)
	switch {
	case ent.IsNotFound(err):
		builder := r.ent.Group.Create().
			SetID(group.ID).
			SetCustomerID(group.CustomerID).
			SetOwnerID(group.OwnerID).
			SetDocumentCount(group.DocumentCount)
		if !group.CreatedAt.IsZero() {
			builder = builder.SetCreatedAt(group.CreatedAt)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create group", "group_id", group.ID, "error", err)
			return nil, err
		}
		return toGroup(row), nil
	case err != nil:
		return nil, err
	default:
		row, err := r.ent.Group.UpdateOne(existing).
			SetCustomerID(group.CustomerID).
			SetDocumentCount(group.DocumentCount).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update group", "group_id", group.ID, "error", err)
			return nil, err
		}
		return toGroup(row), nil
	}
}

func (r *groupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Group.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *groupRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.ent.Group.Query().
		Where(entgroup.OwnerID(ownerID)).
		Count(ctx)
}

func toGroup(e *ent.Group) *entity.Group {
	return &entity.Group{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		OwnerID:       e.OwnerID,
		DocumentCount: e.DocumentCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toGroups(rows []*ent.Group) []*entity.Group {
	out := make([]*entity.Group, len(rows))
	for i, row := range rows {
		out[i] = toGroup(row)
	}
	return out
}

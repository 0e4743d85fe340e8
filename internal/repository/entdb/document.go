package entdb

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/gen/ent"
	entdoc "github.com/scanvault/scanvault/gen/ent/document"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
)

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) repository.DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.GroupID(groupID)).
		Order(entdoc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "group_id", groupID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}

func (r *documentRepo) Upsert(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	existing, err := r.ent.Document.Get(ctx, doc.ID)
	switch {
	case ent.IsNotFound(err):
		builder := r.ent.Document.Create().
			SetID(doc.ID).
			SetGroupID(doc.GroupID).
			SetImageRef(doc.ImageRef).
			SetAssetID(doc.AssetID).
			SetType(doc.Type)
		if !doc.CreatedAt.IsZero() {
			builder = builder.SetCreatedAt(doc.CreatedAt)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create document", "document_id", doc.ID, "error", err)
			return nil, err
		}
		return toDocument(row), nil
	case err != nil:
		return nil, err
	default:
		row, err := r.ent.Document.UpdateOne(existing).
			SetImageRef(doc.ImageRef).
			SetAssetID(doc.AssetID).
			SetType(doc.Type).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update document", "document_id", doc.ID, "error", err)
			return nil, err
		}
		return toDocument(row), nil
	}
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *documentRepo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	n, err := r.ent.Document.Delete().
		Where(entdoc.GroupID(groupID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete documents by group", "group_id", groupID, "error", err)
		return 0, err
	}
	return n, nil
}

func toDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:        e.ID,
		GroupID:   e.GroupID,
		ImageRef:  e.ImageRef,
		AssetID:   e.AssetID,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

package memdb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/constants"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
)

func TestDocumentUpsertCreatesThenMerges(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository()
	id := uuid.New()
	groupID := uuid.New()

	created, err := repo.Upsert(ctx, &entity.Document{
		ID:       id,
		GroupID:  groupID,
		ImageRef: "https://cdn.example/a.jpg",
		Type:     constants.TypeUnclassified,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	updated, err := repo.Upsert(ctx, &entity.Document{
		ID:       id,
		GroupID:  groupID,
		ImageRef: "https://cdn.example/a.jpg",
		Type:     "ElectricityBill",
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "ElectricityBill", updated.Type)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestDocumentUpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository()
	doc := &entity.Document{ID: uuid.New(), GroupID: uuid.New(), ImageRef: "r", Type: "Contract"}

	first, err := repo.Upsert(ctx, doc)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, doc)
	require.NoError(t, err)

	// Visible fields identical except updated_at, which must not decrease.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.GroupID, second.GroupID)
	assert.Equal(t, first.ImageRef, second.ImageRef)
	assert.Equal(t, first.Type, second.Type)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestDocumentGetMissing(t *testing.T) {
	repo := NewDocumentRepository()
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDocumentDeleteByGroup(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository()
	groupID := uuid.New()
	otherGroup := uuid.New()

	for i := 0; i < 4; i++ {
		_, err := repo.Upsert(ctx, &entity.Document{ID: uuid.New(), GroupID: groupID, Type: constants.TypeOther})
		require.NoError(t, err)
	}
	keep, err := repo.Upsert(ctx, &entity.Document{ID: uuid.New(), GroupID: otherGroup, Type: constants.TypeOther})
	require.NoError(t, err)

	n, err := repo.DeleteByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	left, err := repo.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = repo.GetByID(ctx, keep.ID)
	assert.NoError(t, err)
}

func TestGroupUpsertAndSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository()
	owner := uuid.New()

	g1, err := repo.Upsert(ctx, &entity.Group{ID: uuid.New(), CustomerID: "11122233344", OwnerID: owner})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &entity.Group{ID: uuid.New(), CustomerID: "22233344455", OwnerID: owner})
	require.NoError(t, err)

	hits, err := repo.SearchByCustomerPrefix(ctx, "111")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, g1.ID, hits[0].ID)

	none, err := repo.SearchByCustomerPrefix(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, none)

	n, err := repo.CountByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGroupUpsertPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository()
	id := uuid.New()

	first, err := repo.Upsert(ctx, &entity.Group{ID: id, OwnerID: uuid.New()})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, &entity.Group{ID: id, OwnerID: first.OwnerID, CustomerID: "12345678901", DocumentCount: 3})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 3, second.DocumentCount)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	id := uuid.New()

	_, err := repo.Upsert(ctx, &entity.User{ID: id, DisplayName: "Field Agent", Email: "agent@example.com"})
	require.NoError(t, err)

	u, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Field Agent", u.DisplayName)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), common.ErrNotFound)
}

package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository/memdb"
)

func TestDeleteUserRefusedWhileGroupsRemain(t *testing.T) {
	ctx := context.Background()
	usersRepo := memdb.NewUserRepository()
	groupsRepo := memdb.NewGroupRepository()
	svc := NewService(usersRepo, groupsRepo, nil)

	u, err := usersRepo.Upsert(ctx, &entity.User{ID: uuid.New(), DisplayName: "alex"})
	require.NoError(t, err)
	_, err = groupsRepo.Upsert(ctx, &entity.Group{ID: uuid.New(), OwnerID: u.ID, CustomerID: "12345678901"})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPrecondition)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_OWNS_GROUPS", appErr.Code)

	// The account survives a refused delete.
	_, err = usersRepo.GetByID(ctx, u.ID)
	require.NoError(t, err)
}

func TestDeleteUserWithoutGroups(t *testing.T) {
	ctx := context.Background()
	usersRepo := memdb.NewUserRepository()
	svc := NewService(usersRepo, memdb.NewGroupRepository(), nil)

	u, err := usersRepo.Upsert(ctx, &entity.User{ID: uuid.New(), DisplayName: "sam"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	_, err = usersRepo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteUserAfterGroupsRemoved(t *testing.T) {
	ctx := context.Background()
	usersRepo := memdb.NewUserRepository()
	groupsRepo := memdb.NewGroupRepository()
	svc := NewService(usersRepo, groupsRepo, nil)

	u, err := usersRepo.Upsert(ctx, &entity.User{ID: uuid.New(), DisplayName: "kim"})
	require.NoError(t, err)
	g, err := groupsRepo.Upsert(ctx, &entity.Group{ID: uuid.New(), OwnerID: u.ID})
	require.NoError(t, err)

	require.Error(t, svc.DeleteUser(ctx, u.ID))
	require.NoError(t, groupsRepo.Delete(ctx, g.ID))
	require.NoError(t, svc.DeleteUser(ctx, u.ID))
}

func TestEnsureUserCreatesOnce(t *testing.T) {
	ctx := context.Background()
	usersRepo := memdb.NewUserRepository()
	svc := NewService(usersRepo, memdb.NewGroupRepository(), nil)

	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://scanvault.local/users/batch"))

	u, err := svc.EnsureUser(ctx, id, "Local Batch")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Local Batch", u.DisplayName)

	// A repeat call returns the stored row instead of overwriting it.
	again, err := svc.EnsureUser(ctx, id, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, id, again.ID)
	assert.Equal(t, "Local Batch", again.DisplayName)

	// The created row satisfies group ownership.
	_, err = usersRepo.GetByID(ctx, id)
	require.NoError(t, err)
}

func TestEnsureUserKeepsExisting(t *testing.T) {
	ctx := context.Background()
	usersRepo := memdb.NewUserRepository()
	svc := NewService(usersRepo, memdb.NewGroupRepository(), nil)

	id := uuid.New()
	_, err := usersRepo.Upsert(ctx, &entity.User{ID: id, DisplayName: "pat", Email: "pat@example.com"})
	require.NoError(t, err)

	u, err := svc.EnsureUser(ctx, id, "Local Batch")
	require.NoError(t, err)
	assert.Equal(t, "pat", u.DisplayName)
	assert.Equal(t, "pat@example.com", u.Email)
}

func TestSaveUserValidatesDisplayName(t *testing.T) {
	svc := NewService(memdb.NewUserRepository(), memdb.NewGroupRepository(), nil)
	_, err := svc.SaveUser(context.Background(), &entity.User{ID: uuid.New()})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

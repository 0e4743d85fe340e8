package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
	"github.com/scanvault/scanvault/internal/repository/memdb"
)

type flakyDocRepo struct {
	repository.DocumentRepository
	failID uuid.UUID
}

func (f *flakyDocRepo) Upsert(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	if d.ID == f.failID {
		return nil, errors.New("constraint violation")
	}
	return f.DocumentRepository.Upsert(ctx, d)
}

func TestSaveSessionRecomputesDocumentCount(t *testing.T) {
	ctx := context.Background()

	for n := 0; n <= 3; n++ {
		t.Run(fmt.Sprintf("pages=%d", n), func(t *testing.T) {
			groups := memdb.NewGroupRepository()
			docs := memdb.NewDocumentRepository()
			svc := NewService(groups, docs, &fakeBlob{}, nil)

			ocrStub := &fakeOCR{texts: map[string]string{}}
			paths := make([]string, 0, n)
			for i := 0; i < n; i++ {
				p := fmt.Sprintf("p%d.jpg", i)
				paths = append(paths, p)
				ocrStub.texts[memRef(p)] = "invoice"
			}

			sess := newTestSession(t, ocrStub, nil)
			sess.AddPages(ctx, paths)
			sess.Wait()

			res := svc.SaveSession(ctx, sess)
			require.True(t, res.OK())
			assert.Equal(t, n, res.Saved)

			stored, err := groups.GetByID(ctx, sess.Group().ID)
			require.NoError(t, err)
			assert.Equal(t, n, stored.DocumentCount)

			listed, err := docs.ListByGroup(ctx, sess.Group().ID)
			require.NoError(t, err)
			assert.Len(t, listed, n)
		})
	}
}

func TestSaveSessionCountUpdatesOnResave(t *testing.T) {
	ctx := context.Background()
	groups := memdb.NewGroupRepository()
	docs := memdb.NewDocumentRepository()
	svc := NewService(groups, docs, &fakeBlob{}, nil)

	ocrStub := &fakeOCR{texts: map[string]string{
		memRef("a.jpg"): "invoice",
		memRef("b.jpg"): "invoice",
	}}
	sess := newTestSession(t, ocrStub, nil)
	sess.AddPages(ctx, []string{"a.jpg"})
	sess.Wait()
	require.True(t, svc.SaveSession(ctx, sess).OK())

	sess.AddPages(ctx, []string{"b.jpg"})
	sess.Wait()
	require.True(t, svc.SaveSession(ctx, sess).OK())

	stored, err := groups.GetByID(ctx, sess.Group().ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.DocumentCount)
}

func TestSaveSessionIsBestEffort(t *testing.T) {
	ctx := context.Background()
	groups := memdb.NewGroupRepository()
	docs := memdb.NewDocumentRepository()

	ocrStub := &fakeOCR{texts: map[string]string{
		memRef("a.jpg"): "invoice",
		memRef("b.jpg"): "invoice",
		memRef("c.jpg"): "invoice",
	}}
	sess := newTestSession(t, ocrStub, nil)
	sess.AddPages(ctx, []string{"a.jpg", "b.jpg", "c.jpg"})
	sess.Wait()

	victim := sess.Documents()[1].ID
	svc := NewService(groups, &flakyDocRepo{DocumentRepository: docs, failID: victim}, &fakeBlob{}, nil)

	res := svc.SaveSession(ctx, sess)
	assert.False(t, res.OK())
	assert.NoError(t, res.GroupErr)
	assert.Equal(t, 2, res.Saved)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, victim, res.Failed[0].DocumentID)

	// The group and the other documents still landed.
	_, err := groups.GetByID(ctx, sess.Group().ID)
	require.NoError(t, err)
	listed, err := docs.ListByGroup(ctx, sess.Group().ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestDeleteGroupCascades(t *testing.T) {
	ctx := context.Background()
	groups := memdb.NewGroupRepository()
	docs := memdb.NewDocumentRepository()
	blobs := &fakeBlob{failDelete: map[string]bool{"asset-1": true}}
	svc := NewService(groups, docs, blobs, nil)

	groupID := uuid.New()
	_, err := groups.Upsert(ctx, &entity.Group{ID: groupID, OwnerID: uuid.New(), DocumentCount: 3})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := docs.Upsert(ctx, &entity.Document{
			ID:       uuid.New(),
			GroupID:  groupID,
			ImageRef: fmt.Sprintf("mem://d%d.jpg", i),
			AssetID:  fmt.Sprintf("asset-%d", i),
			Type:     "Invoice",
		})
		require.NoError(t, err)
	}

	// One blob delete fails; the cascade still completes.
	require.NoError(t, svc.DeleteGroup(ctx, groupID))

	listed, err := docs.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Empty(t, listed)
	_, err = groups.GetByID(ctx, groupID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ElementsMatch(t, []string{"asset-0", "asset-2"}, blobs.deletedAssets())
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()
	docs := memdb.NewDocumentRepository()
	blobs := &fakeBlob{}
	svc := NewService(memdb.NewGroupRepository(), docs, blobs, nil)

	doc := &entity.Document{
		ID:        uuid.New(),
		GroupID:   uuid.New(),
		ImageRef:  "mem://x.jpg",
		AssetID:   "asset-x",
		Type:      "Contract",
		CreatedAt: time.Now().UTC(),
	}
	_, err := docs.Upsert(ctx, doc)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))
	_, err = docs.GetByID(ctx, doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, []string{"asset-x"}, blobs.deletedAssets())
}

func TestDeleteDocumentMissing(t *testing.T) {
	svc := NewService(memdb.NewGroupRepository(), memdb.NewDocumentRepository(), &fakeBlob{}, nil)
	err := svc.DeleteDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

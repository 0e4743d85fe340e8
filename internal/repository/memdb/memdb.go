// Package memdb provides in-memory gateway implementations with the
// same upsert semantics as the database-backed drivers. Used by tests
// and by local batch runs that need no database at all.
package memdb

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
)

type DocumentRepo struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]entity.Document
}

func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{docs: make(map[uuid.UUID]entity.Document)}
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

func (r *DocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &d, nil
}

func (r *DocumentRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Document
	for _, d := range r.docs {
		if d.GroupID == groupID {
			cp := d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *DocumentRepo) Upsert(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	stored := *doc
	if existing, ok := r.docs[doc.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.docs[doc.ID] = stored
	cp := stored
	return &cp, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *DocumentRepo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, d := range r.docs {
		if d.GroupID == groupID {
			delete(r.docs, id)
			n++
		}
	}
	return n, nil
}

type GroupRepo struct {
	mu     sync.RWMutex
	groups map[uuid.UUID]entity.Group
}

func NewGroupRepository() *GroupRepo {
	return &GroupRepo{groups: make(map[uuid.UUID]entity.Group)}
}

var _ repository.GroupRepository = (*GroupRepo)(nil)

func (r *GroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &g, nil
}

func (r *GroupRepo) List(ctx context.Context) ([]*entity.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Group, 0, len(r.groups))
	for _, g := range r.groups {
		cp := g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *GroupRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Group
	for _, g := range all {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GroupRepo) SearchByCustomerPrefix(ctx context.Context, prefix string) ([]*entity.Group, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Group
	for _, g := range all {
		if prefix != "" && strings.HasPrefix(g.CustomerID, prefix) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GroupRepo) Upsert(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	stored := *group
	if existing, ok := r.groups[group.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.groups[group.ID] = stored
	cp := stored
	return &cp, nil
}

func (r *GroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *GroupRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	gs, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(gs), nil
}

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]entity.User)}
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	stored := *user
	if existing, ok := r.users[user.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.users[user.ID] = stored
	cp := stored
	return &cp, nil
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// Package users handles account lifecycle.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
)

// Service guards user records against deletion while data still hangs
// off them.
type Service struct {
	users  repository.UserRepository
	groups repository.GroupRepository
	logger *slog.Logger
}

func NewService(users repository.UserRepository, groups repository.GroupRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, groups: groups, logger: logger}
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) SaveUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	v := common.NewValidator().
		Field("display_name", u.DisplayName, common.Required).
		Field("display_name", u.DisplayName, func(f string, val interface{}) *common.ValidationError {
			return common.MaxLength(f, val, 120)
		})
	if v.HasErrors() {
		return nil, common.NewAppError("USER_INVALID", v.ErrorMessage(), common.ErrInvalidInput)
	}
	return s.users.Upsert(ctx, u)
}

// EnsureUser returns the account with the given id, creating it with
// the given display name when it does not exist yet. Groups carry a
// foreign key to their owner, so anything that upserts groups needs
// its user row in place first.
func (s *Service) EnsureUser(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	created, err := s.SaveUser(ctx, &entity.User{ID: id, DisplayName: displayName})
	if err != nil {
		return nil, err
	}
	s.logger.Info("users.ensure.created", "user_id", id)
	return created, nil
}

// DeleteUser removes an account. The delete is refused while the user
// still owns any group; callers must delete or reassign the groups
// first, there is no implicit cascade through user deletion.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	n, err := s.groups.CountByOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("count owned groups: %w", err)
	}
	if n > 0 {
		s.logger.Warn("users.delete.refused", "user_id", id, "owned_groups", n)
		return common.NewAppError(
			"USER_OWNS_GROUPS",
			fmt.Sprintf("user still owns %d group(s)", n),
			common.ErrPrecondition,
		)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("users.delete.ok", "user_id", id)
	return nil
}

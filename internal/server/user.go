package server

import (
	"context"
	"log/slog"

	scanvaultpb "github.com/scanvault/scanvault/gen/proto/scanvault/v1"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/users"
	"github.com/scanvault/scanvault/internal/utils"
)

type UserServer struct {
	scanvaultpb.UnimplementedUserServiceServer
	svc    *users.Service
	logger *slog.Logger
}

func NewUserServer(svc *users.Service, logger *slog.Logger) *UserServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServer{svc: svc, logger: logger}
}

func (s *UserServer) GetUser(ctx context.Context, req *scanvaultpb.GetUserRequest) (*scanvaultpb.GetUserResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	u, err := s.svc.GetUser(ctx, id)
	if err != nil {
		return nil, toStatus(err, "get user")
	}
	return &scanvaultpb.GetUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UserServer) SaveUser(ctx context.Context, req *scanvaultpb.SaveUserRequest) (*scanvaultpb.SaveUserResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	saved, err := s.svc.SaveUser(ctx, &entity.User{
		ID:          id,
		DisplayName: req.GetDisplayName(),
		Email:       req.GetEmail(),
	})
	if err != nil {
		return nil, toStatus(err, "save user")
	}
	return &scanvaultpb.SaveUserResponse{User: utils.ToPBUser(saved)}, nil
}

func (s *UserServer) DeleteUser(ctx context.Context, req *scanvaultpb.DeleteUserRequest) (*scanvaultpb.DeleteUserResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteUser(ctx, id); err != nil {
		return nil, toStatus(err, "delete user")
	}
	return &scanvaultpb.DeleteUserResponse{}, nil
}

package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	scanvaultpb "github.com/scanvault/scanvault/gen/proto/scanvault/v1"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/repository"
	"github.com/scanvault/scanvault/internal/scan"
	"github.com/scanvault/scanvault/internal/utils"
)

type ScanServer struct {
	scanvaultpb.UnimplementedScanServiceServer
	groups repository.GroupRepository
	docs   repository.DocumentRepository
	svc    *scan.Service
	logger *slog.Logger
}

func NewScanServer(groups repository.GroupRepository, docs repository.DocumentRepository, svc *scan.Service, logger *slog.Logger) *ScanServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanServer{groups: groups, docs: docs, svc: svc, logger: logger}
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func (s *ScanServer) GetGroup(ctx context.Context, req *scanvaultpb.GetGroupRequest) (*scanvaultpb.GetGroupResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, toStatus(err, "get group")
	}
	return &scanvaultpb.GetGroupResponse{Group: utils.ToPBGroup(g)}, nil
}

func (s *ScanServer) ListGroups(ctx context.Context, req *scanvaultpb.ListGroupsRequest) (*scanvaultpb.ListGroupsResponse, error) {
	var (
		gs  []*entity.Group
		err error
	)
	if raw := strings.TrimSpace(req.GetOwnerId()); raw != "" {
		ownerID, perr := parseUUID(raw, "owner_id")
		if perr != nil {
			return nil, perr
		}
		gs, err = s.groups.ListByOwner(ctx, ownerID)
	} else {
		gs, err = s.groups.List(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list groups", "error", err)
		return nil, status.Error(codes.Internal, "list groups failed")
	}

	out := make([]*scanvaultpb.Group, 0, len(gs))
	for _, g := range gs {
		out = append(out, utils.ToPBGroup(g))
	}
	return &scanvaultpb.ListGroupsResponse{Groups: out}, nil
}

func (s *ScanServer) SearchGroups(ctx context.Context, req *scanvaultpb.SearchGroupsRequest) (*scanvaultpb.SearchGroupsResponse, error) {
	prefix := strings.TrimSpace(req.GetCustomerIdPrefix())
	if prefix == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id_prefix is required")
	}
	gs, err := s.groups.SearchByCustomerPrefix(ctx, prefix)
	if err != nil {
		s.logger.Error("failed to search groups", "prefix", prefix, "error", err)
		return nil, status.Error(codes.Internal, "search groups failed")
	}
	out := make([]*scanvaultpb.Group, 0, len(gs))
	for _, g := range gs {
		out = append(out, utils.ToPBGroup(g))
	}
	return &scanvaultpb.SearchGroupsResponse{Groups: out}, nil
}

// SaveGroup upserts group metadata. It is how a client edits the
// customer id after reviewing a scan.
func (s *ScanServer) SaveGroup(ctx context.Context, req *scanvaultpb.SaveGroupRequest) (*scanvaultpb.SaveGroupResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	customerID := strings.TrimSpace(req.GetCustomerId())
	if customerID != "" {
		v := common.NewValidator().Field("customer_id", customerID, common.Digits)
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
	}

	g := &entity.Group{
		ID:         id,
		OwnerID:    ownerID,
		CustomerID: customerID,
	}
	if existing, err := s.groups.GetByID(ctx, id); err == nil {
		g.DocumentCount = existing.DocumentCount
		g.CreatedAt = existing.CreatedAt
	}

	saved, err := s.groups.Upsert(ctx, g)
	if err != nil {
		s.logger.Error("failed to save group", "group_id", id, "error", err)
		return nil, status.Error(codes.Internal, "save group failed")
	}
	s.logger.Info("group saved", "group_id", id, "customer_id", saved.CustomerID)
	return &scanvaultpb.SaveGroupResponse{Group: utils.ToPBGroup(saved)}, nil
}

func (s *ScanServer) DeleteGroup(ctx context.Context, req *scanvaultpb.DeleteGroupRequest) (*scanvaultpb.DeleteGroupResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteGroup(ctx, id); err != nil {
		return nil, toStatus(err, "delete group")
	}
	return &scanvaultpb.DeleteGroupResponse{}, nil
}

func (s *ScanServer) ListDocuments(ctx context.Context, req *scanvaultpb.ListDocumentsRequest) (*scanvaultpb.ListDocumentsResponse, error) {
	groupID, err := parseUUID(req.GetGroupId(), "group_id")
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("failed to list documents", "group_id", groupID, "error", err)
		return nil, status.Error(codes.Internal, "list documents failed")
	}
	out := make([]*scanvaultpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &scanvaultpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *ScanServer) DeleteDocument(ctx context.Context, req *scanvaultpb.DeleteDocumentRequest) (*scanvaultpb.DeleteDocumentResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteDocument(ctx, id); err != nil {
		return nil, toStatus(err, "delete document")
	}
	return &scanvaultpb.DeleteDocumentResponse{}, nil
}

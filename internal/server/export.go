package server

import (
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	scanvaultpb "github.com/scanvault/scanvault/gen/proto/scanvault/v1"
	"github.com/scanvault/scanvault/internal/export"
)

type ExportServer struct {
	scanvaultpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// RunSync streams one progress message per handled group, then closes
// the stream when the run finishes. Per-group failures ride the stream
// as progress entries; an RPC error means the run itself could not
// proceed. The summary workbook is persisted to the destination by the
// sync itself.
func (s *ExportServer) RunSync(_ *scanvaultpb.RunSyncRequest, stream scanvaultpb.ExportService_RunSyncServer) error {
	var sendErr error
	_, err := s.svc.Sync(stream.Context(), func(p export.Progress) {
		if sendErr != nil {
			return
		}
		msg := &scanvaultpb.SyncProgress{
			GroupId:    p.GroupID.String(),
			CustomerId: p.CustomerID,
			Done:       int32(p.Done),
			Total:      int32(p.Total),
			Bundles:    int32(p.Bundles),
		}
		if p.Err != nil {
			msg.Error = p.Err.Error()
		}
		sendErr = stream.Send(msg)
	})
	if err != nil {
		s.logger.Error("export.sync.failed", "error", err)
		return status.Errorf(codes.Internal, "sync failed: %v", err)
	}
	if sendErr != nil {
		return sendErr
	}
	return nil
}

// Package server exposes the scan, export, and user services over gRPC.
package server

//go:generate protoc --proto_path=../../proto --go_out=../../gen/proto --go_opt=paths=source_relative --go-grpc_out=../../gen/proto --go-grpc_opt=paths=source_relative scanvault/v1/scanvault.proto

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scanvault/scanvault/internal/common"
)

// RequestIDInterceptor tags every unary call with a request id so
// handlers and repositories can correlate their log lines.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(common.WithRequestID(ctx, uuid.NewString()), req)
	}
}

// toStatus maps application errors onto gRPC status codes.
func toStatus(err error, op string) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: not found", op)
	case errors.Is(err, common.ErrPrecondition):
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			return status.Errorf(codes.FailedPrecondition, "%s: %s", op, appErr.Message)
		}
		return status.Errorf(codes.FailedPrecondition, "%s failed", op)
	case errors.Is(err, common.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Internal, "%s failed", op)
	}
}

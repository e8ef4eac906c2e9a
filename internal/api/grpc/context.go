package grpc

import (
	"context"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"go4rent-backend/internal/api/grpc/interceptor"
)

// actorIDFromContext returns the authenticated caller placed in the metadata by the auth interceptor.
func actorIDFromContext(ctx context.Context) (int32, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	vals := md.Get(interceptor.UserIDHeader)
	if len(vals) == 0 {
		return 0, status.Error(codes.Unauthenticated, "caller is not authenticated")
	}

	id, err := strconv.ParseInt(vals[0], 10, 32)
	if err != nil || id <= 0 {
		return 0, status.Errorf(codes.Unauthenticated, "invalid caller id %q", vals[0])
	}
	return int32(id), nil
}

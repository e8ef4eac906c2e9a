package grpc

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
)

var kindCodes = map[domain.ErrorKind]codes.Code{
	domain.KindValidation:      codes.InvalidArgument,
	domain.KindNotFound:        codes.NotFound,
	domain.KindUnauthorized:    codes.PermissionDenied,
	domain.KindConflict:        codes.FailedPrecondition,
	domain.KindExternalFailure: codes.Unavailable,
}

// toStatus converts a service error into a gRPC status. Only the kind, reason
// and entity id of a domain error reach the client.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var de *domain.Error
	if errors.As(err, &de) {
		code, ok := kindCodes[de.Kind]
		if !ok {
			code = codes.Unknown
		}
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			code = codes.AlreadyExists
		}
		return status.Error(code, de.Error())
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return status.Error(codes.InvalidArgument, ve.Error())
	}

	logger.Error("Unhandled error", "error", err)
	return status.Error(codes.Internal, "internal error")
}

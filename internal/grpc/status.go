package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/service"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
)

// codeForResult maps a failed result to a status code.
func codeForResult(r tx.Result) codes.Code {
	switch {
	case r.IsSuccess():
		return codes.OK
	case r.IsTem():
		return codes.InvalidArgument
	case r == tx.TecUNAUTHORIZED:
		return codes.PermissionDenied
	case r == tx.TecNO_ENTRY:
		return codes.NotFound
	case r == tx.TefPAST_SEQ, r.IsTer():
		return codes.FailedPrecondition
	case r.IsTec():
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a status error.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var r tx.Result
	switch {
	case errors.As(err, &r):
		return status.Error(codeForResult(r), r.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

package grpc

import (
	"errors"

	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrListingNotFound),
		errors.Is(err, e.ErrOrderNotFound),
		errors.Is(err, e.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrUnknownStatus),
		errors.Is(err, e.ErrOwnerRequired),
		errors.Is(err, e.ErrNoListings):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrRebuildThrottled):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

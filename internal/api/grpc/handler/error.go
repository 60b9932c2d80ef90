package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/proto"
	"github.com/dtroode/studyflow-waitlist/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidCollection),
		errors.Is(err, model.ErrInvalidFields),
		errors.Is(err, proto.ErrMalformedRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

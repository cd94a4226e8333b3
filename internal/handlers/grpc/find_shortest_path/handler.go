// Package find_shortest_path отдаёт по gRPC маршруты, найденные локальным
// pathfinder. Запрос и ответ - google.protobuf.Struct в формате,
// который ждёт gateway/grpc/routing.
package find_shortest_path

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"tracking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) FindShortestPath(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	spec, err := toRouteSpecification(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "route specification: %v", err)
	}

	itineraries, err := h.service.FetchRoutesForSpecification(ctx, spec)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return nil, status.Error(codes.Canceled, "request canceled")
		case errors.Is(err, context.DeadlineExceeded):
			return nil, status.Error(codes.DeadlineExceeded, "deadline exceeded")
		default:
			h.log.With(
				logger.NewField("origin", spec.Origin.String()),
				logger.NewField("destination", spec.Destination.String()),
				logger.NewField("error", err),
			).Error("find shortest path")
			return nil, status.Error(codes.Unavailable, "routes are temporarily unavailable")
		}
	}

	resp, err := toResponse(itineraries)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode response")
		return nil, status.Error(codes.Internal, "encode response")
	}

	h.log.With(
		logger.NewField("origin", spec.Origin.String()),
		logger.NewField("destination", spec.Destination.String()),
		logger.NewField("paths", len(itineraries)),
	).Debug("paths found")

	return resp, nil
}

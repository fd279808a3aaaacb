package grpc

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/proto"
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
)

// AdminService — доверенная граница обслуживания: пересборка проекции и
// массовые переходы статуса, недоступные публичным клиентам.
type AdminService struct {
	proto.UnimplementedAdminServiceServer
	listingUC usecase.ListingUC
	rebuildUC usecase.RebuildUC
	logger    logger.Logger
}

func NewAdminService(listingUC usecase.ListingUC, rebuildUC usecase.RebuildUC, logger logger.Logger) *AdminService {
	return &AdminService{
		listingUC: listingUC,
		rebuildUC: rebuildUC,
		logger:    logger,
	}
}

func (g *AdminService) Rebuild(ctx context.Context, req *proto.RebuildRequest) (*proto.RebuildResponse, error) {
	const op = "grpc.Rebuild"

	res, err := g.rebuildUC.Rebuild(ctx, req.GetOwnerId())
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)

		if res == nil {
			return nil, GRPCErrorResponse(e.Wrap(op, err))
		}
		// Частичный итог: пересборка не прерывается досрочно,
		// но страничный сбой отражаем в ответе.
		return rebuildResponse(res, false, err.Error()), nil
	}

	return rebuildResponse(res, true, fmt.Sprintf("rebuild finished for owner %s", req.GetOwnerId())), nil
}

func (g *AdminService) BulkSetStatus(ctx context.Context, req *proto.BulkSetStatusRequest) (*proto.BulkSetStatusResponse, error) {
	const op = "grpc.BulkSetStatus"

	res, err := g.listingUC.BulkSetStatus(ctx, usecase.NewBulkStatusReq(
		req.GetOwnerId(), req.GetCarIds(), domain.ExternalStatus(req.GetStatus()),
	))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.BulkSetStatusResponse{
		Total:   int64(res.Total),
		Updated: int64(res.Updated),
		Errors:  int64(res.Errors),
	}, nil
}

func rebuildResponse(res *usecase.RebuildRes, success bool, message string) *proto.RebuildResponse {
	return &proto.RebuildResponse{
		Success:     success,
		Processed:   int64(res.Processed),
		Upserted:    int64(res.Upserted),
		Unpublished: int64(res.Unpublished),
		Errors:      int64(res.Errors),
		Message:     message,
	}
}

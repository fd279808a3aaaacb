package usecase

import (
	"context"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

type ListingUC interface {
	CreateListing(ctx context.Context, req *CreateListingReq) (*domain.Listing, error)
	SetStatus(ctx context.Context, req *SetStatusReq) error
	BulkSetStatus(ctx context.Context, req *BulkStatusReq) (*BulkStatusRes, error)
	GetPublicListing(ctx context.Context, carID string) (*domain.PublicListing, error)
}

type PromotionUC interface {
	ApplyOrder(ctx context.Context, ownerID, orderID string) error
}

type RebuildUC interface {
	Rebuild(ctx context.Context, ownerID string) (*RebuildRes, error)
	RebuildThrottled(ctx context.Context, ownerID string) (*RebuildRes, error)
}

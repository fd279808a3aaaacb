package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
)

func carIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("car-%04d", i)
	}
	return ids
}

func TestListingUseCaseBulkSetStatus(t *testing.T) {
	t.Parallel()

	t.Run("splits request into chunks under the batch ceiling", func(t *testing.T) {
		t.Parallel()

		var chunks [][]string
		inventory := &fakeInventoryRepo{
			bulkSetStatusFn: func(ctx context.Context, ownerID string, ids []string, status domain.ListingStatus) (int, error) {
				chunks = append(chunks, ids)
				return len(ids), nil
			},
		}
		uc := NewListingUC(inventory, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

		res, err := uc.BulkSetStatus(context.Background(), NewBulkStatusReq("owner-1", carIDs(1000), domain.ExternalHidden))
		if err != nil {
			t.Fatalf("BulkSetStatus: %v", err)
		}

		wantSizes := []int{450, 450, 100}
		if len(chunks) != len(wantSizes) {
			t.Fatalf("got %d chunks, want %d", len(chunks), len(wantSizes))
		}
		for i, chunk := range chunks {
			if len(chunk) != wantSizes[i] {
				t.Errorf("chunk %d has %d ids, want %d", i, len(chunk), wantSizes[i])
			}
			if len(chunk) > batchCeiling {
				t.Errorf("chunk %d exceeds the batch ceiling", i)
			}
		}
		if res.Total != 1000 || res.Updated != 1000 || res.Errors != 0 {
			t.Errorf("result = %+v, want {1000 1000 0}", res)
		}
	})

	t.Run("failed chunk counts its ids as errors and does not abort", func(t *testing.T) {
		t.Parallel()

		call := 0
		inventory := &fakeInventoryRepo{
			bulkSetStatusFn: func(ctx context.Context, ownerID string, ids []string, status domain.ListingStatus) (int, error) {
				call++
				if call == 2 {
					return 0, errors.New("deadlock detected")
				}
				return len(ids), nil
			},
		}
		uc := NewListingUC(inventory, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

		res, err := uc.BulkSetStatus(context.Background(), NewBulkStatusReq("owner-1", carIDs(1000), domain.ExternalHidden))
		if err != nil {
			t.Fatalf("BulkSetStatus: %v", err)
		}
		if call != 3 {
			t.Errorf("made %d chunk calls, want 3: failure must not abort later chunks", call)
		}
		if res.Total != 1000 || res.Updated != 550 || res.Errors != 450 {
			t.Errorf("result = %+v, want {Total:1000 Updated:550 Errors:450}", res)
		}
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		t.Parallel()

		uc := NewListingUC(&fakeInventoryRepo{}, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

		if _, err := uc.BulkSetStatus(context.Background(), NewBulkStatusReq("owner-1", nil, domain.ExternalHidden)); !errors.Is(err, e.ErrNoListings) {
			t.Errorf("err = %v, want %v", err, e.ErrNoListings)
		}
	})

	t.Run("unknown external status is rejected before any chunk", func(t *testing.T) {
		t.Parallel()

		inventory := &fakeInventoryRepo{
			bulkSetStatusFn: func(ctx context.Context, ownerID string, ids []string, status domain.ListingStatus) (int, error) {
				t.Error("repository must not be called for an unknown status")
				return 0, nil
			},
		}
		uc := NewListingUC(inventory, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

		if _, err := uc.BulkSetStatus(context.Background(), NewBulkStatusReq("owner-1", carIDs(3), "ARCHIVED")); !errors.Is(err, e.ErrUnknownStatus) {
			t.Errorf("err = %v, want %v", err, e.ErrUnknownStatus)
		}
	})

	t.Run("successful bulk triggers a deferred rebuild for the owner", func(t *testing.T) {
		t.Parallel()

		rebuild := &fakeRebuildUC{calls: make(chan string, 1)}
		uc := NewListingUC(&fakeInventoryRepo{}, nil, newFakePublicRepo(), nil, rebuild, nil, nopLogger{})

		if _, err := uc.BulkSetStatus(context.Background(), NewBulkStatusReq("owner-1", carIDs(3), domain.ExternalPublished)); err != nil {
			t.Fatalf("BulkSetStatus: %v", err)
		}

		select {
		case owner := <-rebuild.calls:
			if owner != "owner-1" {
				t.Errorf("rebuild triggered for %q, want owner-1", owner)
			}
		case <-time.After(2 * time.Second):
			t.Error("rebuild was not triggered")
		}
	})
}

func TestListingUseCaseCreateValidation(t *testing.T) {
	t.Parallel()

	uc := NewListingUC(&fakeInventoryRepo{}, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

	tests := []struct {
		name string
		req  *CreateListingReq
		want error
	}{
		{"missing owner", NewCreateListingReq("", "Lada", "Vesta", 2020, 100_00), e.ErrOwnerRequired},
		{"missing brand", NewCreateListingReq("owner-1", " ", "Vesta", 2020, 100_00), e.ErrBrandRequired},
		{"missing model", NewCreateListingReq("owner-1", "Lada", "", 2020, 100_00), e.ErrModelRequired},
		{"non-positive price", NewCreateListingReq("owner-1", "Lada", "Vesta", 2020, 0), e.ErrPriceMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := uc.CreateListing(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestListingUseCaseSetStatusUnknown(t *testing.T) {
	t.Parallel()

	uc := NewListingUC(&fakeInventoryRepo{}, nil, newFakePublicRepo(), nil, &fakeRebuildUC{}, nil, nopLogger{})

	err := uc.SetStatus(context.Background(), NewSetStatusReq("owner-1", "car-1", "SOLD"))
	if !errors.Is(err, e.ErrUnknownStatus) {
		t.Errorf("err = %v, want %v", err, e.ErrUnknownStatus)
	}
}

func TestListingUseCaseGetPublicListing(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored projection", func(t *testing.T) {
		t.Parallel()

		public := newFakePublicRepo()
		public.store["car-1"] = &domain.PublicListing{CarID: "car-1", Brand: "Lada"}
		uc := NewListingUC(&fakeInventoryRepo{}, nil, public, nil, &fakeRebuildUC{}, nil, nopLogger{})

		listing, err := uc.GetPublicListing(context.Background(), "car-1")
		if err != nil {
			t.Fatalf("GetPublicListing: %v", err)
		}
		if listing.Brand != "Lada" {
			t.Errorf("Brand = %q, want Lada", listing.Brand)
		}
	})

	t.Run("not found is propagated", func(t *testing.T) {
		t.Parallel()

		public := newFakePublicRepo()
		public.getFn = func(ctx context.Context, carID string) (*domain.PublicListing, error) {
			return nil, e.ErrListingNotFound
		}
		uc := NewListingUC(&fakeInventoryRepo{}, nil, public, nil, &fakeRebuildUC{}, nil, nopLogger{})

		if _, err := uc.GetPublicListing(context.Background(), "ghost"); !errors.Is(err, e.ErrListingNotFound) {
			t.Errorf("err = %v, want %v", err, e.ErrListingNotFound)
		}
	})
}

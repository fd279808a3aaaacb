package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
)

// pagedInventory отдаёт заранее заданный инвентарь keyset-страницами,
// как это делает реальный репозиторий.
func pagedInventory(listings []*domain.Listing) *fakeInventoryRepo {
	return &fakeInventoryRepo{
		listByOwnerFn: func(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error) {
			start := 0
			if afterCarID != "" {
				for i, l := range listings {
					if l.CarID == afterCarID {
						start = i + 1
						break
					}
				}
			}
			end := start + limit
			if end > len(listings) {
				end = len(listings)
			}
			return listings[start:end], nil
		},
	}
}

func rebuildFixture(published, archived int) []*domain.Listing {
	listings := make([]*domain.Listing, 0, published+archived)
	for i := 0; i < published+archived; i++ {
		l := domain.NewListing("owner-1", fmt.Sprintf("car-%04d", i), "Lada", "Vesta", 2020, 100_00)
		if i < published {
			l.Status = domain.StatusPublished
		} else {
			l.Status = domain.StatusArchived
		}
		listings = append(listings, l)
	}
	return listings
}

func TestRebuildServiceRebuild(t *testing.T) {
	t.Parallel()

	t.Run("converges projection to the master snapshot", func(t *testing.T) {
		t.Parallel()

		// 250 записей, чтобы задействовать больше одной страницы
		listings := rebuildFixture(150, 100)
		public := newFakePublicRepo()
		syncer := NewProjectionSyncer(public, &fakeResolver{}, nopLogger{})
		svc := NewRebuildService(pagedInventory(listings), syncer, nopLogger{})

		res, err := svc.Rebuild(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("Rebuild: %v", err)
		}

		if res.Processed != 250 || res.Upserted != 150 || res.Unpublished != 100 || res.Errors != 0 {
			t.Errorf("result = %+v, want {250 150 100 0}", res)
		}
		for _, l := range listings {
			if want := l.Status == domain.StatusPublished; public.has(l.CarID) != want {
				t.Errorf("car %s: projection exists = %v, want %v", l.CarID, public.has(l.CarID), want)
			}
		}
	})

	t.Run("sync failures are counted and do not stop the pass", func(t *testing.T) {
		t.Parallel()

		listings := rebuildFixture(10, 0)
		public := newFakePublicRepo()
		public.upsertFn = func(ctx context.Context, listing *domain.PublicListing) error {
			if listing.CarID == "car-0003" {
				return errors.New("redis timeout")
			}
			return nil
		}

		syncer := NewProjectionSyncer(public, &fakeResolver{}, nopLogger{})
		svc := NewRebuildService(pagedInventory(listings), syncer, nopLogger{})

		res, err := svc.Rebuild(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("Rebuild: %v", err)
		}
		if res.Processed != 10 || res.Errors != 1 || res.Upserted != 9 {
			t.Errorf("result = %+v, want {Processed:10 Upserted:9 Errors:1}", res)
		}
	})

	t.Run("page failure returns the partial summary with an error", func(t *testing.T) {
		t.Parallel()

		inventory := &fakeInventoryRepo{
			listByOwnerFn: func(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error) {
				return nil, errors.New("connection reset")
			},
		}
		syncer := NewProjectionSyncer(newFakePublicRepo(), &fakeResolver{}, nopLogger{})
		svc := NewRebuildService(inventory, syncer, nopLogger{})

		res, err := svc.Rebuild(context.Background(), "owner-1")
		if err == nil {
			t.Fatal("expected an error")
		}
		if res == nil {
			t.Fatal("partial summary must accompany the error")
		}
	})

	t.Run("empty owner id is rejected", func(t *testing.T) {
		t.Parallel()

		syncer := NewProjectionSyncer(newFakePublicRepo(), &fakeResolver{}, nopLogger{})
		svc := NewRebuildService(&fakeInventoryRepo{}, syncer, nopLogger{})

		if _, err := svc.Rebuild(context.Background(), ""); !errors.Is(err, e.ErrOwnerRequired) {
			t.Errorf("err = %v, want %v", err, e.ErrOwnerRequired)
		}
	})
}

func TestRebuildServiceThrottle(t *testing.T) {
	t.Parallel()

	syncer := NewProjectionSyncer(newFakePublicRepo(), &fakeResolver{}, nopLogger{})
	svc := NewRebuildService(&fakeInventoryRepo{}, syncer, nopLogger{})

	if _, err := svc.RebuildThrottled(context.Background(), "owner-1"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := svc.RebuildThrottled(context.Background(), "owner-1"); !errors.Is(err, e.ErrRebuildThrottled) {
		t.Errorf("second run err = %v, want %v", err, e.ErrRebuildThrottled)
	}

	// Троттлинг не глобальный: другой владелец не ждёт
	if _, err := svc.RebuildThrottled(context.Background(), "owner-2"); err != nil {
		t.Errorf("other owner was throttled: %v", err)
	}
}

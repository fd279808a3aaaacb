package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
)

func paidCarOrder(ownerID, carID string, items ...domain.OrderItem) *domain.PromotionOrder {
	paidAt := time.Now()
	return &domain.PromotionOrder{
		ID:      "order-1",
		OwnerID: ownerID,
		CarID:   &carID,
		Status:  domain.OrderPaid,
		Items:   items,
		PaidAt:  &paidAt,
	}
}

func TestPromotionUseCaseApplyOrder(t *testing.T) {
	t.Parallel()

	t.Run("unpaid order is rejected", func(t *testing.T) {
		t.Parallel()

		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopePrivateSellerAd})
		order.Status = domain.OrderDraft
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "order-1"); !errors.Is(err, e.ErrOrderNotPaid) {
			t.Errorf("err = %v, want %v", err, e.ErrOrderNotPaid)
		}
	})

	t.Run("cancelled order is rejected", func(t *testing.T) {
		t.Parallel()

		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopePrivateSellerAd})
		order.Status = domain.OrderCancelled
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "order-1"); !errors.Is(err, e.ErrOrderNotPaid) {
			t.Errorf("err = %v, want %v", err, e.ErrOrderNotPaid)
		}
	})

	t.Run("foreign order reads as not found", func(t *testing.T) {
		t.Parallel()

		order := paidCarOrder("owner-2", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopePrivateSellerAd})
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "order-1"); !errors.Is(err, e.ErrOrderNotFound) {
			t.Errorf("err = %v, want %v", err, e.ErrOrderNotFound)
		}
	})

	t.Run("order repo error is propagated", func(t *testing.T) {
		t.Parallel()

		uc := NewPromotionUC(&fakeOrderRepo{err: e.ErrOrderNotFound}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "ghost"); !errors.Is(err, e.ErrOrderNotFound) {
			t.Errorf("err = %v, want %v", err, e.ErrOrderNotFound)
		}
	})
}

func TestPromotionUseCaseApplyCarPromotion(t *testing.T) {
	t.Parallel()

	t.Run("order with only brand-scope items is a diagnosed no-op", func(t *testing.T) {
		t.Parallel()

		inventory := &fakeInventoryRepo{
			savePromotionFn: func(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error {
				t.Error("promotion state must not be persisted for a no-op order")
				return nil
			},
		}
		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardBrand})
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, inventory, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyCarPromotion(context.Background(), order); err != nil {
			t.Errorf("no-op order must not fail: %v", err)
		}
	})

	t.Run("paid order persists merged windows and records an outbox event", func(t *testing.T) {
		t.Parallel()

		var saved *domain.CarPromotionState
		inventory := &fakeInventoryRepo{
			savePromotionFn: func(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error {
				saved = &promo
				return nil
			},
		}
		outbox := &fakeOutboxRepo{}
		txs := &fakeTxStarter{}
		order := paidCarOrder("owner-1", "car-1",
			domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardCar, DurationDays: 7},
			domain.OrderItem{Product: domain.ProductHighlight, Scope: domain.ScopeYardCar, DurationDays: 14},
		)
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, inventory, &fakeAccountRepo{}, outbox, txs, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "order-1"); err != nil {
			t.Fatalf("ApplyOrder: %v", err)
		}

		if saved == nil {
			t.Fatal("promotion state was not persisted")
		}
		if saved.BoostUntil == nil || !saved.BoostUntil.After(time.Now()) {
			t.Error("boost window must extend into the future")
		}
		if saved.HighlightUntil == nil || !saved.HighlightUntil.After(*saved.BoostUntil) {
			t.Error("highlight window must outlast the shorter boost window")
		}
		if saved.LastPromotionSource != domain.SourceYard {
			t.Errorf("source = %s, want %s", saved.LastPromotionSource, domain.SourceYard)
		}

		if len(outbox.events) != 1 {
			t.Fatalf("outbox events = %d, want 1", len(outbox.events))
		}
		event := outbox.events[0]
		if event.EventType != EventListingPromotionApplied {
			t.Errorf("event type = %s, want %s", event.EventType, EventListingPromotionApplied)
		}
		if event.AggregateID != "car-1" {
			t.Errorf("aggregate = %s, want car-1", event.AggregateID)
		}

		if txs.tx == nil || !txs.tx.committed {
			t.Error("transaction must be committed")
		}
	})

	t.Run("order without a car id is rejected", func(t *testing.T) {
		t.Parallel()

		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopePrivateSellerAd})
		order.CarID = nil
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyCarPromotion(context.Background(), order); !errors.Is(err, e.ErrListingNotFound) {
			t.Errorf("err = %v, want %v", err, e.ErrListingNotFound)
		}
	})

	t.Run("missing listing is propagated", func(t *testing.T) {
		t.Parallel()

		inventory := &fakeInventoryRepo{
			getByIDFn: func(ctx context.Context, ownerID, carID string) (*domain.Listing, error) {
				return nil, e.ErrListingNotFound
			},
		}
		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopePrivateSellerAd})
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, inventory, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyCarPromotion(context.Background(), order); !errors.Is(err, e.ErrListingNotFound) {
			t.Errorf("err = %v, want %v", err, e.ErrListingNotFound)
		}
	})
}

func TestPromotionUseCaseApplyAccountPromotion(t *testing.T) {
	t.Parallel()

	t.Run("mixed scopes are a diagnosed no-op, not a partial application", func(t *testing.T) {
		t.Parallel()

		accounts := &fakeAccountRepo{account: &domain.Account{ID: "owner-1"}}
		order := paidCarOrder("owner-1", "car-1",
			domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardBrand},
			domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardCar},
		)
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, accounts, nil, nil, nopLogger{})

		if err := uc.ApplyAccountPromotion(context.Background(), order); err != nil {
			t.Errorf("mixed order must be skipped without error: %v", err)
		}
		if accounts.saved != nil {
			t.Error("mixed order must not touch the account grant")
		}
	})

	t.Run("paid account order persists the merged grant and records an outbox event", func(t *testing.T) {
		t.Parallel()

		accounts := &fakeAccountRepo{account: &domain.Account{ID: "owner-1"}}
		outbox := &fakeOutboxRepo{}
		txs := &fakeTxStarter{}
		order := paidCarOrder("owner-1", "car-1",
			domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardBrand, DurationDays: 30},
		)
		order.CarID = nil
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, accounts, outbox, txs, nopLogger{})

		if err := uc.ApplyOrder(context.Background(), "owner-1", "order-1"); err != nil {
			t.Fatalf("ApplyOrder: %v", err)
		}

		saved := accounts.saved
		if saved == nil {
			t.Fatal("account grant was not persisted")
		}
		if !saved.IsPremium || !saved.ShowRecommendedBadge {
			t.Error("boost must grant premium with the recommended badge")
		}
		if saved.PremiumUntil == nil || !saved.PremiumUntil.After(time.Now()) {
			t.Error("premium window must extend into the future")
		}
		if saved.MaxFeaturedCars != domain.FeaturedCarsFloor {
			t.Errorf("featured limit = %d, want floor %d", saved.MaxFeaturedCars, domain.FeaturedCarsFloor)
		}

		if len(outbox.events) != 1 {
			t.Fatalf("outbox events = %d, want 1", len(outbox.events))
		}
		event := outbox.events[0]
		if event.EventType != EventAccountPromotionApplied {
			t.Errorf("event type = %s, want %s", event.EventType, EventAccountPromotionApplied)
		}
		if event.AggregateID != "owner-1" {
			t.Errorf("aggregate = %s, want owner-1", event.AggregateID)
		}

		if txs.tx == nil || !txs.tx.committed {
			t.Error("transaction must be committed")
		}
	})

	t.Run("unpaid account order is rejected", func(t *testing.T) {
		t.Parallel()

		order := paidCarOrder("owner-1", "car-1", domain.OrderItem{Product: domain.ProductBoost, Scope: domain.ScopeYardBrand})
		order.Status = domain.OrderDraft
		uc := NewPromotionUC(&fakeOrderRepo{order: order}, &fakeInventoryRepo{}, &fakeAccountRepo{}, nil, nil, nopLogger{})

		if err := uc.ApplyAccountPromotion(context.Background(), order); !errors.Is(err, e.ErrOrderNotPaid) {
			t.Errorf("err = %v, want %v", err, e.ErrOrderNotPaid)
		}
	})
}

func TestDurationDays(t *testing.T) {
	t.Parallel()

	item := domain.OrderItem{DurationDays: 14}
	if got := durationDays(item, DefaultCarPromotionDays); got != 14 {
		t.Errorf("durationDays = %d, want 14", got)
	}

	item.DurationDays = 0
	if got := durationDays(item, DefaultCarPromotionDays); got != DefaultCarPromotionDays {
		t.Errorf("durationDays = %d, want default %d", got, DefaultCarPromotionDays)
	}

	item.DurationDays = -3
	if got := durationDays(item, DefaultAccountPromotionDays); got != DefaultAccountPromotionDays {
		t.Errorf("durationDays = %d, want default %d", got, DefaultAccountPromotionDays)
	}
}

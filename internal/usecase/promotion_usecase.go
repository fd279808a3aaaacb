package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// DefaultCarPromotionDays — срок продукта по умолчанию для объявления,
	// если заказ не несёт известного срока.
	DefaultCarPromotionDays = 7
	// DefaultAccountPromotionDays — срок по умолчанию для аккаунт-гранта.
	DefaultAccountPromotionDays = 30
)

// PromotionUseCase применяет оплаченные промо-заказы к объявлениям и аккаунтам.
// Применение идемпотентно по слиянию: окна объединяются правилом максимума,
// поэтому повторное применение того же заказа не удлиняет окно сверх однократного.
type PromotionUseCase struct {
	orderRepo     OrderRepository
	inventoryRepo InventoryRepository
	accountRepo   AccountRepository
	outboxRepo    OutboxRepository
	dbPool        transaction.Transactional
	logger        logger.Logger
}

func NewPromotionUC(
	orderRepo OrderRepository,
	inventoryRepo InventoryRepository,
	accountRepo AccountRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PromotionUseCase {
	return &PromotionUseCase{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		accountRepo:   accountRepo,
		outboxRepo:    outboxRepo,
		dbPool:        dbPool,
		logger:        logger,
	}
}

// ApplyOrder загружает заказ и применяет его к объявлению либо к аккаунту
// в зависимости от scope позиций. Заказ обязан быть оплачен.
func (p *PromotionUseCase) ApplyOrder(ctx context.Context, ownerID, orderID string) error {
	const op = "PromotionUseCase.ApplyOrder"

	order, err := p.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if order.OwnerID != ownerID {
		return e.Wrap(op, e.ErrOrderNotFound)
	}
	if order.Status != domain.OrderPaid {
		return e.Wrap(op, e.ErrOrderNotPaid)
	}

	if order.AccountLevelOnly() {
		return p.ApplyAccountPromotion(ctx, order)
	}
	return p.ApplyCarPromotion(ctx, order)
}

// ApplyCarPromotion применяет позиции заказа к окнам продвижения объявления.
// Позиции аккаунт-уровня пропускаются; состояние сохраняется в MASTER и
// становится видимым в PUBLIC на следующей синхронизации или пересборке.
func (p *PromotionUseCase) ApplyCarPromotion(ctx context.Context, order *domain.PromotionOrder) error {
	const op = "PromotionUseCase.ApplyCarPromotion"

	if order.Status != domain.OrderPaid {
		return e.Wrap(op, e.ErrOrderNotPaid)
	}
	if order.CarID == nil {
		return e.Wrap(op, e.ErrListingNotFound)
	}

	listing, err := p.inventoryRepo.GetByID(ctx, order.OwnerID, *order.CarID)
	if err != nil {
		return e.Wrap(op, err)
	}

	now := time.Now()
	state := listing.Promotion
	source := domain.SourcePrivateSeller
	applied := 0

	for _, item := range order.Items {
		if item.Scope == domain.ScopeYardBrand {
			continue
		}
		state.Apply(item.Product, now.AddDate(0, 0, durationDays(item, DefaultCarPromotionDays)))
		if item.Scope == domain.ScopeYardCar {
			source = domain.SourceYard
		}
		applied++
	}

	if applied == 0 {
		p.logger.Warnf("order %s has no car-level items, nothing to apply", order.ID)
		return nil
	}

	// Источник последнего заказа перезаписывается, не сливается
	state.LastPromotionSource = source

	return p.persistCarState(ctx, order, listing, state)
}

// ApplyAccountPromotion применяет аккаунт-заказ к гранту аккаунта владельца.
// Предусловие: все позиции имеют аккаунт-уровневый scope; смешанный заказ —
// no-op с диагностикой, частичное применение запрещено во избежание порчи
// состояния продвижения.
func (p *PromotionUseCase) ApplyAccountPromotion(ctx context.Context, order *domain.PromotionOrder) error {
	const op = "PromotionUseCase.ApplyAccountPromotion"

	if order.Status != domain.OrderPaid {
		return e.Wrap(op, e.ErrOrderNotPaid)
	}
	if !order.AccountLevelOnly() {
		p.logger.Warnf("order %s mixes account and car scopes, skipping: %v", order.ID, e.ErrOrderScopeMismatch)
		return nil
	}

	account, err := p.accountRepo.GetByID(ctx, order.OwnerID)
	if err != nil {
		return e.Wrap(op, err)
	}

	now := time.Now()
	state := account.Promotion
	for _, item := range order.Items {
		state.Apply(item.Product, now.AddDate(0, 0, durationDays(item, DefaultAccountPromotionDays)))
	}

	return p.persistAccountState(ctx, order, state)
}

func (p *PromotionUseCase) persistCarState(ctx context.Context, order *domain.PromotionOrder, listing *domain.Listing, state domain.CarPromotionState) error {
	const op = "PromotionUseCase.persistCarState"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = p.inventoryRepo.SavePromotion(ctx, listing.OwnerID, listing.CarID, state); err != nil {
		return e.Wrap(op, err)
	}
	if err = p.recordEvent(ctx, EventListingPromotionApplied, order, listing.CarID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (p *PromotionUseCase) persistAccountState(ctx context.Context, order *domain.PromotionOrder, state domain.AccountPromotionState) error {
	const op = "PromotionUseCase.persistAccountState"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = p.accountRepo.SavePromotion(ctx, order.OwnerID, state); err != nil {
		return e.Wrap(op, err)
	}
	if err = p.recordEvent(ctx, EventAccountPromotionApplied, order, ""); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (p *PromotionUseCase) recordEvent(ctx context.Context, eventType string, order *domain.PromotionOrder, carID string) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(ListingChangeEvent{
		EventID:    eventID,
		EventType:  eventType,
		OwnerID:    order.OwnerID,
		CarID:      carID,
		OccurredAt: time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	aggregateID := carID
	if aggregateID == "" {
		aggregateID = order.OwnerID
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, aggregateID, payload))
	return err
}

// durationDays возвращает срок действия позиции; неизвестный срок заменяется умолчанием.
func durationDays(item domain.OrderItem, fallback int) int {
	if item.DurationDays > 0 {
		return item.DurationDays
	}
	return fallback
}

package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// batchCeiling — документированный потолок атомарного батча хранилища.
	batchCeiling = 500
	// batchChunkSize — размер порции массовых операций, с запасом под потолком.
	batchChunkSize = 450
)

// ListingUseCase реализует бизнес-логику управления объявлениями:
// создание, смену статуса с синхронизацией проекции и массовые переходы.
type ListingUseCase struct {
	inventoryRepo InventoryRepository
	outboxRepo    OutboxRepository
	publicRepo    PublicListingRepository
	syncer        *ProjectionSyncer
	rebuild       RebuildUC
	dbPool        transaction.Transactional
	logger        logger.Logger
}

func NewListingUC(
	inventoryRepo InventoryRepository,
	outboxRepo OutboxRepository,
	publicRepo PublicListingRepository,
	syncer *ProjectionSyncer,
	rebuild RebuildUC,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ListingUseCase {
	return &ListingUseCase{
		inventoryRepo: inventoryRepo,
		outboxRepo:    outboxRepo,
		publicRepo:    publicRepo,
		syncer:        syncer,
		rebuild:       rebuild,
		dbPool:        dbPool,
		logger:        logger,
	}
}

// CreateListing создает объявление в статусе draft и записывает outbox-событие
// в той же транзакции.
func (l *ListingUseCase) CreateListing(ctx context.Context, req *CreateListingReq) (*domain.Listing, error) {
	const op = "ListingUseCase.CreateListing"

	var err error
	if err = l.validateListing(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, l.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	listing := domain.NewListing(req.OwnerID, uuid.NewString(), req.Brand, req.Model, req.Year, req.PriceKopecks)
	listing.Mileage = req.Mileage
	listing.City = req.City
	listing.Transmission = req.Transmission
	listing.FuelType = req.FuelType
	listing.ImageURLs = req.ImageURLs
	if len(req.ImageURLs) > 0 {
		listing.MainImageURL = &req.ImageURLs[0]
	}

	listing, err = l.inventoryRepo.Create(ctx, listing)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = l.recordEvent(ctx, EventListingCreated, listing.OwnerID, listing.CarID, listing.Status); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return listing, nil
}

// SetStatus применяет переход статуса к одному объявлению и затем
// синхронизирует публичную проекцию. Отказ PUBLIC-стороны не откатывает
// состоявшуюся запись MASTER: он логируется и остаётся пересборке.
func (l *ListingUseCase) SetStatus(ctx context.Context, req *SetStatusReq) error {
	const op = "ListingUseCase.SetStatus"

	status, ok := domain.StatusFromExternal(req.Status)
	if !ok {
		return e.Wrap(op, e.ErrUnknownStatus)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, l.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	listing, err := l.inventoryRepo.SetStatus(ctx, req.OwnerID, req.CarID, status)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = l.recordEvent(ctx, EventListingStatusChanged, listing.OwnerID, listing.CarID, listing.Status); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	// Запись MASTER состоялась; синхронизация проекции — best-effort
	if _, syncErr := l.syncer.Sync(ctx, listing); syncErr != nil {
		l.logger.Warnf("projection sync failed for car %s, left to rebuild: %v", listing.CarID, syncErr)
	}

	return nil
}

// BulkSetStatus применяет переход статуса к произвольному числу объявлений
// порциями не больше batchChunkSize. Каждая порция — один атомарный батч;
// отказ порции засчитывает ошибкой каждый её идентификатор и не прерывает
// остальные порции. Ожидание ввода-вывода каждой порции — точка передачи
// управления планировщику.
func (l *ListingUseCase) BulkSetStatus(ctx context.Context, req *BulkStatusReq) (*BulkStatusRes, error) {
	const op = "ListingUseCase.BulkSetStatus"

	if len(req.CarIDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoListings)
	}

	status, ok := domain.StatusFromExternal(req.Status)
	if !ok {
		return nil, e.Wrap(op, e.ErrUnknownStatus)
	}

	res := &BulkStatusRes{Total: len(req.CarIDs)}
	for start := 0; start < len(req.CarIDs); start += batchChunkSize {
		if err := ctx.Err(); err != nil {
			res.Errors += res.Total - res.Updated - res.Errors
			return res, e.Wrap(op, err)
		}

		end := start + batchChunkSize
		if end > len(req.CarIDs) {
			end = len(req.CarIDs)
		}
		chunk := req.CarIDs[start:end]

		updated, err := l.inventoryRepo.BulkSetStatus(ctx, req.OwnerID, chunk, status)
		if err != nil {
			l.logger.Warnf("bulk chunk [%d:%d] failed: %v", start, end, e.Wrap(op, err))
			res.Errors += len(chunk)
			continue
		}
		res.Updated += updated
	}

	// Поштучная синхронизация пропущена ради производительности; сходимость
	// PUBLIC-стороны гарантирует отложенная пересборка.
	if res.Updated > 0 {
		go l.triggerRebuild(req.OwnerID)
	}

	return res, nil
}

// GetPublicListing возвращает публичную проекцию объявления.
func (l *ListingUseCase) GetPublicListing(ctx context.Context, carID string) (*domain.PublicListing, error) {
	const op = "ListingUseCase.GetPublicListing"

	listing, err := l.publicRepo.Get(ctx, carID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return listing, nil
}

// triggerRebuild запускает отложенную пересборку проекции владельца.
// Ошибки (включая срабатывание троттлинга) только логируются.
func (l *ListingUseCase) triggerRebuild(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := l.rebuild.RebuildThrottled(ctx, ownerID); err != nil {
		l.logger.Warnf("post-bulk rebuild for owner %s: %v", ownerID, err)
	}
}

// recordEvent кладёт событие изменения объявления в outbox в текущей транзакции.
func (l *ListingUseCase) recordEvent(ctx context.Context, eventType, ownerID, carID string, status domain.ListingStatus) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(ListingChangeEvent{
		EventID:    eventID,
		EventType:  eventType,
		OwnerID:    ownerID,
		CarID:      carID,
		Status:     string(status),
		OccurredAt: time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	aggregateID := carID
	if aggregateID == "" {
		aggregateID = ownerID
	}

	_, err = l.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, aggregateID, payload))
	return err
}

// validateListing проверяет корректность входных данных объявления.
func (l *ListingUseCase) validateListing(req *CreateListingReq) error {
	if strings.TrimSpace(req.OwnerID) == "" {
		return e.ErrOwnerRequired
	}
	if strings.TrimSpace(req.Brand) == "" {
		return e.ErrBrandRequired
	}
	if strings.TrimSpace(req.Model) == "" {
		return e.ErrModelRequired
	}
	if req.PriceKopecks <= 0 {
		return e.ErrPriceMustBePositive
	}

	return nil
}

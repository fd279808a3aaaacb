package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Общие фейки для тестов пакета. Поведение задаётся функциональными полями;
// нулевое поле означает успешный no-op.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeInventoryRepo struct {
	createFn        func(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	getByIDFn       func(ctx context.Context, ownerID, carID string) (*domain.Listing, error)
	setStatusFn     func(ctx context.Context, ownerID, carID string, status domain.ListingStatus) (*domain.Listing, error)
	bulkSetStatusFn func(ctx context.Context, ownerID string, carIDs []string, status domain.ListingStatus) (int, error)
	listByOwnerFn   func(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error)
	savePromotionFn func(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error
}

func (f *fakeInventoryRepo) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if f.createFn != nil {
		return f.createFn(ctx, listing)
	}
	return listing, nil
}

func (f *fakeInventoryRepo) GetByID(ctx context.Context, ownerID, carID string) (*domain.Listing, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, ownerID, carID)
	}
	return domain.NewListing(ownerID, carID, "Lada", "Vesta", 2020, 100_00), nil
}

func (f *fakeInventoryRepo) SetStatus(ctx context.Context, ownerID, carID string, status domain.ListingStatus) (*domain.Listing, error) {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, ownerID, carID, status)
	}
	listing := domain.NewListing(ownerID, carID, "Lada", "Vesta", 2020, 100_00)
	listing.Status = status
	return listing, nil
}

func (f *fakeInventoryRepo) BulkSetStatus(ctx context.Context, ownerID string, carIDs []string, status domain.ListingStatus) (int, error) {
	if f.bulkSetStatusFn != nil {
		return f.bulkSetStatusFn(ctx, ownerID, carIDs, status)
	}
	return len(carIDs), nil
}

func (f *fakeInventoryRepo) ListByOwner(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error) {
	if f.listByOwnerFn != nil {
		return f.listByOwnerFn(ctx, ownerID, afterCarID, limit)
	}
	return nil, nil
}

func (f *fakeInventoryRepo) SavePromotion(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error {
	if f.savePromotionFn != nil {
		return f.savePromotionFn(ctx, ownerID, carID, promo)
	}
	return nil
}

// fakePublicRepo хранит проекции в памяти; операции потокобезопасны,
// потому что пересборка синхронизирует страницы параллельно.
// Upsert повторяет merge-контракт хранилища: publishedAt уже
// существующей записи переживает перезапись.
type fakePublicRepo struct {
	mu       sync.Mutex
	store    map[string]*domain.PublicListing
	upsertFn func(ctx context.Context, listing *domain.PublicListing) error
	deleteFn func(ctx context.Context, carID string) error
	getFn    func(ctx context.Context, carID string) (*domain.PublicListing, error)
}

func newFakePublicRepo() *fakePublicRepo {
	return &fakePublicRepo{store: make(map[string]*domain.PublicListing)}
}

func (f *fakePublicRepo) Get(ctx context.Context, carID string) (*domain.PublicListing, error) {
	if f.getFn != nil {
		return f.getFn(ctx, carID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[carID], nil
}

func (f *fakePublicRepo) Upsert(ctx context.Context, listing *domain.PublicListing) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, listing)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.store[listing.CarID]; ok && !existing.PublishedAt.IsZero() {
		listing.PublishedAt = existing.PublishedAt
	}
	f.store[listing.CarID] = listing
	return nil
}

func (f *fakePublicRepo) Delete(ctx context.Context, carID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, carID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, carID)
	return nil
}

func (f *fakePublicRepo) has(carID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.store[carID]
	return ok
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, storageKey string) (string, error)
}

func (f *fakeResolver) ResolveURL(ctx context.Context, storageKey string) (string, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, storageKey)
	}
	return "https://cdn.example.com/" + storageKey, nil
}

type fakeOrderRepo struct {
	order *domain.PromotionOrder
	err   error
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.PromotionOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

type fakeAccountRepo struct {
	account *domain.Account
	saved   *domain.AccountPromotionState
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return f.account, nil
}

func (f *fakeAccountRepo) SavePromotion(ctx context.Context, accountID string, promo domain.AccountPromotionState) error {
	f.saved = &promo
	return nil
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

// fakeTxStarter выдаёт фиктивную pgx-транзакцию: Commit и Rollback лишь
// отмечаются, запросы внутри транзакции выполняют фейковые репозитории.
type fakeTxStarter struct {
	beginErr error
	tx       *fakeTx
}

func (f *fakeTxStarter) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	if f.tx == nil {
		f.tx = &fakeTx{}
	}
	return f.tx, nil
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

type fakeRebuildUC struct {
	calls chan string
	res   *RebuildRes
	err   error
}

func (f *fakeRebuildUC) Rebuild(ctx context.Context, ownerID string) (*RebuildRes, error) {
	return f.res, f.err
}

func (f *fakeRebuildUC) RebuildThrottled(ctx context.Context, ownerID string) (*RebuildRes, error) {
	if f.calls != nil {
		select {
		case f.calls <- ownerID:
		default:
		}
	}
	return f.res, f.err
}

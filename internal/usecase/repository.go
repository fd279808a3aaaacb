package usecase

import (
	"context"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

// InventoryRepository — авторитетное хранилище объявлений (MASTER).
type InventoryRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, ownerID, carID string) (*domain.Listing, error)
	SetStatus(ctx context.Context, ownerID, carID string, status domain.ListingStatus) (*domain.Listing, error)
	// BulkSetStatus атомарно применяет переход статуса к одной порции идентификаторов.
	// Размер порции ограничен потолком атомарного батча хранилища.
	BulkSetStatus(ctx context.Context, ownerID string, carIDs []string, status domain.ListingStatus) (int, error)
	// ListByOwner постранично возвращает объявления владельца (keyset-пагинация по carID).
	ListByOwner(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error)
	// SavePromotion частично обновляет только состояние продвижения объявления.
	SavePromotion(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error
}

// AccountRepository — хранилище аккаунтов продавцов.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	SavePromotion(ctx context.Context, accountID string, promo domain.AccountPromotionState) error
}

// OrderRepository — доступ к промо-заказам, созданным внешним модулем оформления.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PromotionOrder, error)
}

// PublicListingRepository — публичная проекция (PUBLIC).
// Upsert выполняет merge-запись: publishedAt существующей записи сохраняется.
// Delete обязан трактовать «не найдено» и «нет прав» как успешный no-op:
// желаемое конечное состояние — отсутствие записи — уже достигнуто либо
// будет достигнуто доверенным процессом.
type PublicListingRepository interface {
	Get(ctx context.Context, carID string) (*domain.PublicListing, error)
	Upsert(ctx context.Context, listing *domain.PublicListing) error
	Delete(ctx context.Context, carID string) error
}

// OutboxRepository — транзакционный outbox событий изменения объявлений.
type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

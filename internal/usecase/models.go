package usecase

import (
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

// LISTING USECASE

// CreateListingReq — запрос на создание объявления.
type CreateListingReq struct {
	OwnerID      string
	Brand        string
	Model        string
	Year         int
	PriceKopecks int64
	Mileage      int64
	City         string
	Transmission string
	FuelType     string
	ImageURLs    []string
}

// SetStatusReq — запрос на смену статуса публикации одного объявления.
// Статус приходит во внешнем трёхзначном представлении.
type SetStatusReq struct {
	OwnerID string
	CarID   string
	Status  domain.ExternalStatus
}

// BulkStatusReq — запрос на массовую смену статуса.
type BulkStatusReq struct {
	OwnerID string
	CarIDs  []string
	Status  domain.ExternalStatus
}

// BulkStatusRes — итог массовой смены статуса. Операция никогда не
// прерывается досрочно: ошибки порций накапливаются в Errors.
type BulkStatusRes struct {
	Total   int
	Updated int
	Errors  int
}

// REBUILD

// RebuildRes — итог полной пересборки проекции владельца.
type RebuildRes struct {
	Processed   int
	Upserted    int
	Unpublished int
	Errors      int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// Типы событий изменения объявлений.
const (
	EventListingCreated          = "listing.created"
	EventListingStatusChanged    = "listing.status_changed"
	EventListingPromotionApplied = "listing.promotion_applied"
	EventAccountPromotionApplied = "account.promotion_applied"
)

// OutboxEvent — запись транзакционного outbox.
// AggregateID — ключ партиционирования события (carID либо ownerID).
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	AggregateID string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ListingChangeEvent — JSON-полезная нагрузка события для внешней шины.
type ListingChangeEvent struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	OwnerID    string `json:"owner_id"`
	CarID      string `json:"car_id,omitempty"`
	Status     string `json:"status,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

// INFRASTRUCTURE

// WriteRawMessageReq — запрос на публикацию готовой полезной нагрузки в шину.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewCreateListingReq(ownerID, brand, model string, year int, priceKopecks int64) *CreateListingReq {
	return &CreateListingReq{
		OwnerID:      ownerID,
		Brand:        brand,
		Model:        model,
		Year:         year,
		PriceKopecks: priceKopecks,
	}
}

func NewSetStatusReq(ownerID, carID string, status domain.ExternalStatus) *SetStatusReq {
	return &SetStatusReq{
		OwnerID: ownerID,
		CarID:   carID,
		Status:  status,
	}
}

func NewBulkStatusReq(ownerID string, carIDs []string, status domain.ExternalStatus) *BulkStatusReq {
	return &BulkStatusReq{
		OwnerID: ownerID,
		CarIDs:  carIDs,
		Status:  status,
	}
}

func NewOutboxEvent(eventID, eventType, aggregateID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now(),
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

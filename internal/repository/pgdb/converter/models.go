package converter

import (
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
)

// ListingModel представляет запись таблицы inventory в PostgreSQL.
// Окна продвижения развёрнуты в плоские колонки.
type ListingModel struct {
	OwnerID             string                 `db:"owner_id"`
	CarID               string                 `db:"car_id"`
	Brand               string                 `db:"brand"`
	Model               string                 `db:"model"`
	BrandSlug           string                 `db:"brand_slug"`
	ModelSlug           string                 `db:"model_slug"`
	Year                int                    `db:"year"`
	PriceKopecks        int64                  `db:"price_kopecks"`
	Mileage             int64                  `db:"mileage"`
	City                string                 `db:"city"`
	Transmission        string                 `db:"transmission"`
	FuelType            string                 `db:"fuel_type"`
	Status              domain.ListingStatus   `db:"status"`
	ImageURLs           []string               `db:"image_urls"`
	MainImageURL        *string                `db:"main_image_url"`
	BoostUntil          *time.Time             `db:"boost_until"`
	HighlightUntil      *time.Time             `db:"highlight_until"`
	ExposurePlusUntil   *time.Time             `db:"exposure_plus_until"`
	MediaPlusEnabled    bool                   `db:"media_plus_enabled"`
	LastPromotionSource domain.PromotionSource `db:"last_promotion_source"`
	Raw                 map[string]any         `db:"raw"`
	CreatedAt           time.Time              `db:"created_at"`
	UpdatedAt           *time.Time             `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                `db:"id"`
	EventID     string               `db:"event_id"`
	EventType   string               `db:"event_type"`
	AggregateID string               `db:"aggregate_id"`
	Payload     []byte               `db:"payload"`
	Status      usecase.OutboxStatus `db:"status"`
	CreatedAt   time.Time            `db:"created_at"`
	ProcessedAt *time.Time           `db:"processed_at"`
}

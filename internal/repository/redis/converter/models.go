package converter

import (
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

// PublicListingRedisModel — JSON-представление публичной проекции.
// Ключ записи — listing:{carId}.
type PublicListingRedisModel struct {
	CarID          string                `json:"carId"`
	Brand          string                `json:"brand"`
	Model          string                `json:"model"`
	BrandSlug      string                `json:"brandSlug"`
	ModelSlug      string                `json:"modelSlug"`
	Year           int                   `json:"year"`
	PriceKopecks   int64                 `json:"priceKopecks"`
	Mileage        int64                 `json:"mileage"`
	City           string                `json:"city"`
	Transmission   string                `json:"transmission"`
	FuelType       string                `json:"fuelType"`
	ImageURLs      []string              `json:"imageUrls"`
	MainImageURL   *string               `json:"mainImageUrl,omitempty"`
	IsPublished    bool                  `json:"isPublished"`
	PublishedAt    time.Time             `json:"publishedAt"`
	HighlightLevel domain.HighlightLevel `json:"highlightLevel"`
}

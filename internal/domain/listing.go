package domain

import "time"

// Listing описывает авторитетную запись объявления в MASTER.
// Ключ записи — пара (OwnerID, CarID); запись изменяется только владельцем
// и движком продвижения.
type Listing struct {
	OwnerID      string
	CarID        string
	Brand        string
	Model        string
	BrandSlug    string
	ModelSlug    string
	Year         int
	PriceKopecks int64 // Цена хранится в копейках
	Mileage      int64
	City         string
	Transmission string
	FuelType     string
	Status       ListingStatus
	ImageURLs    []string // канонический нормализованный список, без ограничения длины
	MainImageURL *string
	Promotion    CarPromotionState
	// Raw — исторический документ объявления как он пришёл из старых клиентов.
	// Нормализаторы выводят из него статус и изображения.
	Raw       map[string]any
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewListing(ownerID, carID, brand, model string, year int, priceKopecks int64) *Listing {
	return &Listing{
		OwnerID:      ownerID,
		CarID:        carID,
		Brand:        brand,
		Model:        model,
		BrandSlug:    BrandID(brand),
		ModelSlug:    ModelID(brand, model),
		Year:         year,
		PriceKopecks: priceKopecks,
		Status:       StatusDraft,
	}
}

// HighlightLevel задаёт уровень визуального выделения объявления на витрине.
type HighlightLevel string

const (
	HighlightNone      HighlightLevel = "none"
	HighlightBoost     HighlightLevel = "boost"
	HighlightHighlight HighlightLevel = "highlight"
)

// PublicListing — производная публичная проекция объявления.
// Существует тогда и только тогда, когда исходная запись опубликована;
// создаётся и перезаписывается только синхронизатором проекции.
type PublicListing struct {
	CarID          string
	Brand          string
	Model          string
	BrandSlug      string
	ModelSlug      string
	Year           int
	PriceKopecks   int64
	Mileage        int64
	City           string
	Transmission   string
	FuelType       string
	ImageURLs      []string // не более ProjectionImageCap элементов
	MainImageURL   *string
	IsPublished    bool
	PublishedAt    time.Time
	HighlightLevel HighlightLevel
}

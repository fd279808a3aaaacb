package domain

import "time"

// ProductCode — код оплачиваемого продукта продвижения.
type ProductCode string

const (
	ProductBoost        ProductCode = "BOOST"
	ProductHighlight    ProductCode = "HIGHLIGHT"
	ProductMediaPlus    ProductCode = "MEDIA_PLUS"
	ProductExposurePlus ProductCode = "EXPOSURE_PLUS"
	// ProductBundle — комбинированный продукт: продлевает и boost, и highlight одним сроком.
	ProductBundle ProductCode = "BUNDLE"
)

// PromotionSource — категория источника последнего применённого заказа.
type PromotionSource string

const (
	SourceYard          PromotionSource = "YARD"
	SourcePrivateSeller PromotionSource = "PRIVATE_SELLER"
)

// CarPromotionState хранит независимые временные окна продвижения объявления.
// Инвариант: каждое окно монотонно неубывает при последовательном применении
// заказов — слияние всегда берёт более поздний срок.
type CarPromotionState struct {
	BoostUntil          *time.Time
	HighlightUntil      *time.Time
	ExposurePlusUntil   *time.Time
	MediaPlusEnabled    bool
	LastPromotionSource PromotionSource
}

// MergeWindow сливает текущее окно с новым сроком по правилу максимума.
// Повторное применение того же заказа не сдвигает окно дальше однократного.
func MergeWindow(current *time.Time, next time.Time) *time.Time {
	if current != nil && current.After(next) {
		return current
	}
	return &next
}

// Apply применяет одну оплаченную позицию к окнам продвижения объявления.
func (s *CarPromotionState) Apply(product ProductCode, expiry time.Time) {
	switch product {
	case ProductBoost:
		s.BoostUntil = MergeWindow(s.BoostUntil, expiry)
	case ProductHighlight:
		s.HighlightUntil = MergeWindow(s.HighlightUntil, expiry)
	case ProductMediaPlus:
		// Одноразовый флаг без срока действия
		s.MediaPlusEnabled = true
	case ProductExposurePlus:
		s.ExposurePlusUntil = MergeWindow(s.ExposurePlusUntil, expiry)
	case ProductBundle:
		s.BoostUntil = MergeWindow(s.BoostUntil, expiry)
		s.HighlightUntil = MergeWindow(s.HighlightUntil, expiry)
	}
}

// HighlightLevel выводит уровень выделения для публичной проекции
// из активных на момент now окон.
func (s CarPromotionState) HighlightLevel(now time.Time) HighlightLevel {
	if s.HighlightUntil != nil && s.HighlightUntil.After(now) {
		return HighlightHighlight
	}
	if s.BoostUntil != nil && s.BoostUntil.After(now) {
		return HighlightBoost
	}
	return HighlightNone
}

// AccountPromotionState хранит грант продвижения на уровне аккаунта продавца.
// PremiumUntil == nil при IsPremium — бессрочный грант; окно никогда не укорачивается.
// Поля premium и featured делят один срок действия PremiumUntil.
type AccountPromotionState struct {
	IsPremium            bool
	PremiumUntil         *time.Time
	ShowRecommendedBadge bool
	FeaturedInStrips     bool
	MaxFeaturedCars      int
}

// FeaturedCarsFloor — минимальный лимит витринных объявлений,
// до которого поднимается MaxFeaturedCars при любом аккаунт-гранте.
const FeaturedCarsFloor = 5

// Apply применяет одну оплаченную позицию аккаунт-заказа.
func (s *AccountPromotionState) Apply(product ProductCode, expiry time.Time) {
	// Бессрочный грант (IsPremium при PremiumUntil == nil) не ограничивается конечным сроком
	unbounded := s.IsPremium && s.PremiumUntil == nil

	switch product {
	case ProductBoost, ProductBundle:
		s.IsPremium = true
		s.ShowRecommendedBadge = true
	case ProductHighlight, ProductExposurePlus:
		s.FeaturedInStrips = true
	default:
		return
	}

	if !unbounded {
		s.PremiumUntil = MergeWindow(s.PremiumUntil, expiry)
	}

	// Лимит только поднимается до порога, никогда не опускается
	if s.MaxFeaturedCars < FeaturedCarsFloor {
		s.MaxFeaturedCars = FeaturedCarsFloor
	}
}

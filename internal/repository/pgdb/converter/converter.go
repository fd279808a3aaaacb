//go:generate goverter gen github.com/DRSN-tech/automarket-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
)

// ListingConverter преобразует сущности Listing между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertRaw
// goverter:extend ConvertStatus
// goverter:extend ConvertSource
// goverter:extend ConvertHighlight
type ListingConverter interface {
	// goverter:autoMap Promotion
	ToModel(entity *domain.Listing) *ListingModel
	// goverter:map . Promotion
	ToEntity(model *ListingModel) *domain.Listing
	ToArrEntity(models []*ListingModel) []*domain.Listing
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertRaw(raw map[string]any) map[string]any {
	return raw
}

func ConvertStatus(s domain.ListingStatus) domain.ListingStatus {
	return s
}

func ConvertSource(s domain.PromotionSource) domain.PromotionSource {
	return s
}

func ConvertHighlight(h domain.HighlightLevel) domain.HighlightLevel {
	return h
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

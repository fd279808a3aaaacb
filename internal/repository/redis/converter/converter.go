//go:generate goverter gen github.com/DRSN-tech/automarket-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

// PublicListingConverter преобразует публичную проекцию объявления
// между domain и JSON-моделью Redis.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerString
// goverter:extend ConvertHighlight
type PublicListingConverter interface {
	ToRedisModel(entity *domain.PublicListing) *PublicListingRedisModel
	ToEntity(model *PublicListingRedisModel) *domain.PublicListing
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerString(s *string) *string {
	return s
}

func ConvertHighlight(h domain.HighlightLevel) domain.HighlightLevel {
	return h
}

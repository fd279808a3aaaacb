package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/normalize"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
)

// SyncResult — итог одного вызова синхронизации проекции.
type SyncResult int

const (
	// SyncUpserted — проекция создана либо обновлена.
	SyncUpserted SyncResult = iota
	// SyncUnpublished — проекция удалена (запись не опубликована).
	SyncUnpublished
)

// ProjectionSyncer выводит публичную проекцию из записи MASTER.
// Идемпотентен: повторный вызов с тем же входом не меняет конечного состояния.
// MASTER — источник истины, PUBLIC — восстановимый кэш: отказ записи PUBLIC
// не откатывает уже состоявшуюся запись MASTER, дрейф чинит пересборка.
type ProjectionSyncer struct {
	publicRepo PublicListingRepository
	resolver   ImageURLResolver
	logger     logger.Logger
}

func NewProjectionSyncer(publicRepo PublicListingRepository, resolver ImageURLResolver, logger logger.Logger) *ProjectionSyncer {
	return &ProjectionSyncer{
		publicRepo: publicRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

// Sync приводит PUBLIC-запись объявления в соответствие его MASTER-записи:
// опубликованное объявление получает merge-upsert проекции, любое другое —
// удаление надгробия. Безопасен для любого числа повторных вызовов.
func (s *ProjectionSyncer) Sync(ctx context.Context, listing *domain.Listing) (SyncResult, error) {
	const op = "ProjectionSyncer.Sync"

	if s.ResolveStatus(listing) != domain.StatusPublished {
		if err := s.publicRepo.Delete(ctx, listing.CarID); err != nil {
			return SyncUnpublished, e.Wrap(op, err)
		}
		return SyncUnpublished, nil
	}

	projection := s.buildProjection(ctx, listing)
	if err := s.publicRepo.Upsert(ctx, projection); err != nil {
		return SyncUpserted, e.Wrap(op, err)
	}

	return SyncUpserted, nil
}

// ResolveStatus возвращает действующий статус записи: валидная колонка статуса
// выигрывает, иначе статус выводится нормализатором из исторического документа.
func (s *ProjectionSyncer) ResolveStatus(listing *domain.Listing) domain.ListingStatus {
	if listing.Status.IsValid() {
		return listing.Status
	}

	status := normalize.ResolveStatus(listing.Raw)
	s.logger.Debugf("normalized legacy status for car %s: %s", listing.CarID, status)
	return status
}

// buildProjection собирает публичную проекцию: поля идентификации копируются
// как есть, изображения нормализуются и ограничиваются лимитом витрины,
// publishedAt проставляется кандидатом «сейчас» — merge-запись хранилища
// сохранит значение первого перехода в published.
func (s *ProjectionSyncer) buildProjection(ctx context.Context, listing *domain.Listing) *domain.PublicListing {
	urls, mainURL := s.projectionImages(ctx, listing)

	return &domain.PublicListing{
		CarID:          listing.CarID,
		Brand:          listing.Brand,
		Model:          listing.Model,
		BrandSlug:      listing.BrandSlug,
		ModelSlug:      listing.ModelSlug,
		Year:           listing.Year,
		PriceKopecks:   listing.PriceKopecks,
		Mileage:        listing.Mileage,
		City:           listing.City,
		Transmission:   listing.Transmission,
		FuelType:       listing.FuelType,
		ImageURLs:      urls,
		MainImageURL:   mainURL,
		IsPublished:    true,
		PublishedAt:    time.Now(),
		HighlightLevel: listing.Promotion.HighlightLevel(time.Now()),
	}
}

// projectionImages возвращает не более ProjectionImageCap изображений.
// Канонические поля записи имеют приоритет; для легаси-записей список
// выводится нормализатором, дескрипторы без URL разрешаются через хранилище
// изображений (ошибка разрешения не фатальна — дескриптор пропускается).
func (s *ProjectionSyncer) projectionImages(ctx context.Context, listing *domain.Listing) ([]string, *string) {
	urls := listing.ImageURLs
	mainURL := listing.MainImageURL

	if len(urls) == 0 {
		set := normalize.NormalizeImages(listing.Raw)
		urls = set.ImageURLs
		mainURL = set.MainImageURL

		for _, key := range set.StorageKeys {
			if len(urls) >= normalize.ProjectionImageCap {
				break
			}
			resolved, err := s.resolver.ResolveURL(ctx, key)
			if err != nil {
				s.logger.Warnf("failed to resolve image key %s for car %s: %v", key, listing.CarID, err)
				continue
			}
			urls = append(urls, resolved)
		}
	}

	if len(urls) > normalize.ProjectionImageCap {
		urls = urls[:normalize.ProjectionImageCap]
	}
	if mainURL == nil && len(urls) > 0 {
		mainURL = &urls[0]
	}

	return urls, mainURL
}

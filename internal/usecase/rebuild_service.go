package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	// rebuildMinInterval — минимальный интервал между пересборками одного
	// владельца. Троттлинг внутрипроцессный и рекомендательный, распределённой
	// блокировки нет.
	rebuildMinInterval = 30 * time.Second
	rebuildPageSize    = 200
	rebuildParallelism = 8
)

// RebuildService полностью пересобирает публичную проекцию инвентаря одного
// владельца из текущего состояния MASTER. Операция идемпотентна и безопасна
// при конкурентных живых записях: она сходится к прочитанному снимку, а запись,
// изменённая во время пересборки, будет поправлена следующей пересборкой.
type RebuildService struct {
	inventoryRepo InventoryRepository
	syncer        *ProjectionSyncer
	logger        logger.Logger

	mu      sync.Mutex
	lastRun map[string]time.Time
}

func NewRebuildService(inventoryRepo InventoryRepository, syncer *ProjectionSyncer, logger logger.Logger) *RebuildService {
	return &RebuildService{
		inventoryRepo: inventoryRepo,
		syncer:        syncer,
		logger:        logger,
		lastRun:       make(map[string]time.Time),
	}
}

// Rebuild перебирает все объявления владельца и приводит PUBLIC-запись каждого
// в соответствие MASTER. Не прерывается на ошибках отдельных записей — всегда
// возвращает полную сводку, чтобы вызывающий решил, повторять ли отказы.
func (s *RebuildService) Rebuild(ctx context.Context, ownerID string) (*RebuildRes, error) {
	const op = "RebuildService.Rebuild"

	if ownerID == "" {
		return nil, e.Wrap(op, e.ErrOwnerRequired)
	}
	s.markRun(ownerID)

	var processed, upserted, unpublished, errs int64

	after := ""
	for {
		page, err := s.inventoryRepo.ListByOwner(ctx, ownerID, after, rebuildPageSize)
		if err != nil {
			// Без страницы продолжать нечем; возвращаем сводку по сделанному
			return s.result(processed, upserted, unpublished, errs), e.Wrap(op, err)
		}
		if len(page) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(rebuildParallelism)
		for _, listing := range page {
			g.Go(func() error {
				atomic.AddInt64(&processed, 1)

				res, err := s.syncer.Sync(gctx, listing)
				if err != nil {
					atomic.AddInt64(&errs, 1)
					s.logger.Warnf("rebuild: sync failed for car %s: %v", listing.CarID, err)
					return nil // ошибки копятся в сводке, пересборка не прерывается
				}

				if res == SyncUpserted {
					atomic.AddInt64(&upserted, 1)
				} else {
					atomic.AddInt64(&unpublished, 1)
				}
				return nil
			})
		}
		g.Wait()

		if len(page) < rebuildPageSize {
			break
		}
		after = page[len(page)-1].CarID
	}

	res := s.result(processed, upserted, unpublished, errs)
	s.logger.Infof("rebuild finished for owner %s: processed=%d upserted=%d unpublished=%d errors=%d",
		ownerID, res.Processed, res.Upserted, res.Unpublished, res.Errors)

	return res, nil
}

// RebuildThrottled — вариант с минимальным интервалом между запусками
// на владельца, ограничивающий стоимость при повторных срабатываниях.
func (s *RebuildService) RebuildThrottled(ctx context.Context, ownerID string) (*RebuildRes, error) {
	const op = "RebuildService.RebuildThrottled"

	s.mu.Lock()
	last, ok := s.lastRun[ownerID]
	s.mu.Unlock()

	if ok && time.Since(last) < rebuildMinInterval {
		return nil, e.Wrap(op, e.ErrRebuildThrottled)
	}

	return s.Rebuild(ctx, ownerID)
}

func (s *RebuildService) markRun(ownerID string) {
	s.mu.Lock()
	s.lastRun[ownerID] = time.Now()
	s.mu.Unlock()
}

func (s *RebuildService) result(processed, upserted, unpublished, errs int64) *RebuildRes {
	return &RebuildRes{
		Processed:   int(processed),
		Upserted:    int(upserted),
		Unpublished: int(unpublished),
		Errors:      int(errs),
	}
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/automarket-backend/pkg/clients"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// redisCommands — подмножество команд go-redis, которым пользуется репозиторий.
type redisCommands interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// PublicListingRepo хранит публичную проекцию объявлений в Redis.
// Запись существует только для опубликованных объявлений; проекция
// производна и целиком восстановима из MASTER.
type PublicListingRepo struct {
	rdb    redisCommands
	conv   converter.PublicListingConverter
	logger logger.Logger
}

func NewPublicListingRepo(client *clients.RedisClient, conv converter.PublicListingConverter,
	logger logger.Logger) *PublicListingRepo {
	return &PublicListingRepo{
		rdb:    client.Client,
		conv:   conv,
		logger: logger,
	}
}

func (r *PublicListingRepo) Get(ctx context.Context, carID string) (*domain.PublicListing, error) {
	data, err := r.rdb.Get(ctx, r.listingKey(carID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrListingNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.PublicListingRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// Upsert выполняет merge-запись проекции: publishedAt уже существующей
// записи сохраняется, чтобы повторные публикации не сбрасывали дату.
// «Нет прав» на чтение или запись — успешный no-op: запись довершит
// доверенный процесс (синхронизатор либо пересборка).
func (r *PublicListingRepo) Upsert(ctx context.Context, listing *domain.PublicListing) error {
	model := r.conv.ToRedisModel(listing)
	key := r.listingKey(listing.CarID)

	existing, err := r.readModel(ctx, key)
	if err != nil {
		if permissionDenied(err) {
			r.logger.Warnf("Redis GET denied for %s, deferring write to trusted process: %v", listing.CarID, err)
			return nil
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if existing != nil && !existing.PublishedAt.IsZero() {
		model.PublishedAt = existing.PublishedAt
	} else if model.PublishedAt.IsZero() {
		model.PublishedAt = time.Now().UTC()
	}

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		if permissionDenied(err) {
			r.logger.Warnf("Redis SET denied for %s, deferring write to trusted process: %v", listing.CarID, err)
			return nil
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete снимает объявление с витрины. «Не найдено» и «нет прав» —
// успешный no-op: желаемое конечное состояние (отсутствие записи) уже
// достигнуто либо будет достигнуто доверенным процессом.
func (r *PublicListingRepo) Delete(ctx context.Context, carID string) error {
	err := r.rdb.Del(ctx, r.listingKey(carID)).Err()
	if err == nil || errors.Is(err, goredis.Nil) {
		return nil
	}

	if permissionDenied(err) {
		r.logger.Warnf("Redis DEL denied for %s, treating as no-op: %v", carID, err)
		return nil
	}

	return e.Wrap(whereami.WhereAmI(), err)
}

func (r *PublicListingRepo) readModel(ctx context.Context, key string) (*converter.PublicListingRedisModel, error) {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var model converter.PublicListingRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Corrupt projection record %s, overwriting: %v", key, err)
		return nil, nil
	}

	return &model, nil
}

// listingKey возвращает Redis-ключ проекции одного объявления
func (r *PublicListingRepo) listingKey(carID string) string {
	return fmt.Sprintf("listing:%s", carID)
}

// permissionDenied распознаёт отказ в правах со стороны Redis
// (ACL-ограниченный пользователь либо реплика в режиме read-only).
func permissionDenied(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "NOPERM") || strings.Contains(msg, "READONLY")
}

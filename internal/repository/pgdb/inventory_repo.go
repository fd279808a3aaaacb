package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const listingColumns = `
	owner_id, car_id, brand, model, brand_slug, model_slug,
	year, price_kopecks, mileage, city, transmission, fuel_type,
	status, image_urls, main_image_url,
	boost_until, highlight_until, exposure_plus_until,
	media_plus_enabled, last_promotion_source,
	raw, created_at, updated_at`

// InventoryRepo реализует авторитетное хранилище объявлений поверх PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
	conv converter.ListingConverter
}

func NewInventoryRepo(pool *pgxpool.Pool, conv converter.ListingConverter) *InventoryRepo {
	return &InventoryRepo{
		pool: pool,
		conv: conv,
	}
}

func (r *InventoryRepo) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := r.conv.ToModel(listing)
	query := `
		INSERT INTO inventory (
			owner_id, car_id, brand, model, brand_slug, model_slug,
			year, price_kopecks, mileage, city, transmission, fuel_type,
			status, image_urls, main_image_url, raw
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.OwnerID, model.CarID, model.Brand, model.Model,
		model.BrandSlug, model.ModelSlug, model.Year, model.PriceKopecks,
		model.Mileage, model.City, model.Transmission, model.FuelType,
		model.Status, model.ImageURLs, model.MainImageURL, model.Raw,
	).Scan(&model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: listing %s/%s already exists", whereami.WhereAmI(), listing.OwnerID, listing.CarID)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, ownerID, carID string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM inventory
		WHERE owner_id = $1 AND car_id = $2`

	model, err := r.scanOne(r.pool.QueryRow(ctx, query, ownerID, carID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrListingNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *InventoryRepo) SetStatus(ctx context.Context, ownerID, carID string, status domain.ListingStatus) (*domain.Listing, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE inventory
		SET status = $3, updated_at = NOW()
		WHERE owner_id = $1 AND car_id = $2
		RETURNING ` + listingColumns

	model, err := r.scanOne(tx.QueryRow(ctx, query, ownerID, carID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrListingNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

// BulkSetStatus применяет переход статуса ко всей порции в одной транзакции:
// либо фиксируются все изменения порции, либо ни одно.
func (r *InventoryRepo) BulkSetStatus(ctx context.Context, ownerID string, carIDs []string, status domain.ListingStatus) (int, error) {
	if len(carIDs) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE inventory
		SET status = $3, updated_at = NOW()
		WHERE owner_id = $1 AND car_id = $2
	`

	batch := &pgx.Batch{}
	for _, carID := range carIDs {
		batch.Queue(query, ownerID, carID, status)
	}

	results := tx.SendBatch(ctx, batch)

	updated := 0
	for range carIDs {
		ct, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}

		updated += int(ct.RowsAffected())
	}

	if err := results.Close(); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return updated, nil
}

func (r *InventoryRepo) ListByOwner(ctx context.Context, ownerID, afterCarID string, limit int) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM inventory
		WHERE owner_id = $1 AND car_id > $2
		ORDER BY car_id
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, ownerID, afterCarID, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ListingModel
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

// SavePromotion обновляет только плоские колонки продвижения, не трогая
// остальные поля объявления.
func (r *InventoryRepo) SavePromotion(ctx context.Context, ownerID, carID string, promo domain.CarPromotionState) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE inventory
		SET boost_until = $3,
			highlight_until = $4,
			exposure_plus_until = $5,
			media_plus_enabled = $6,
			last_promotion_source = $7,
			updated_at = NOW()
		WHERE owner_id = $1 AND car_id = $2
	`

	ct, err := tx.Exec(ctx, query,
		ownerID, carID,
		promo.BoostUntil, promo.HighlightUntil, promo.ExposurePlusUntil,
		promo.MediaPlusEnabled, promo.LastPromotionSource,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if ct.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrListingNotFound)
	}

	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*converter.ListingModel, error) {
	var model converter.ListingModel
	err := row.Scan(
		&model.OwnerID, &model.CarID, &model.Brand, &model.Model,
		&model.BrandSlug, &model.ModelSlug, &model.Year, &model.PriceKopecks,
		&model.Mileage, &model.City, &model.Transmission, &model.FuelType,
		&model.Status, &model.ImageURLs, &model.MainImageURL,
		&model.BoostUntil, &model.HighlightUntil, &model.ExposurePlusUntil,
		&model.MediaPlusEnabled, &model.LastPromotionSource,
		&model.Raw, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

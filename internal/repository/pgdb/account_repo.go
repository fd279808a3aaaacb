package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// AccountRepo хранит аккаунты продавцов в PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, name, is_yard,
			is_premium, premium_until, show_recommended_badge,
			featured_in_strips, max_featured_cars,
			created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var acc domain.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&acc.ID, &acc.Name, &acc.IsYard,
		&acc.Promotion.IsPremium, &acc.Promotion.PremiumUntil, &acc.Promotion.ShowRecommendedBadge,
		&acc.Promotion.FeaturedInStrips, &acc.Promotion.MaxFeaturedCars,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAccountNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &acc, nil
}

// SavePromotion обновляет только промо-состояние аккаунта.
func (r *AccountRepo) SavePromotion(ctx context.Context, accountID string, promo domain.AccountPromotionState) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE accounts
		SET is_premium = $2,
			premium_until = $3,
			show_recommended_badge = $4,
			featured_in_strips = $5,
			max_featured_cars = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	ct, err := tx.Exec(ctx, query,
		accountID,
		promo.IsPremium, promo.PremiumUntil, promo.ShowRecommendedBadge,
		promo.FeaturedInStrips, promo.MaxFeaturedCars,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if ct.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrAccountNotFound)
	}

	return nil
}

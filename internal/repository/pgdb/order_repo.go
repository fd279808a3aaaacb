package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo читает промо-заказы, созданные внешним модулем оформления.
// Заказы после оплаты неизменяемы, поэтому репозиторий только читает.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.PromotionOrder, error) {
	query := `
		SELECT id, owner_id, car_id, status, created_at, paid_at
		FROM promotion_orders
		WHERE id = $1
	`

	var order domain.PromotionOrder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.OwnerID, &order.CarID,
		&order.Status, &order.CreatedAt, &order.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT product, scope, duration_days
		FROM promotion_order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Product, &item.Scope, &item.DurationDays); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &order, nil
}

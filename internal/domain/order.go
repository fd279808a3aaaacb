package domain

import "time"

// OrderStatus — статус промо-заказа. Заказ неизменяем после создания,
// кроме перехода DRAFT → PAID либо DRAFT → CANCELLED (оба терминальные).
type OrderStatus string

const (
	OrderDraft     OrderStatus = "DRAFT"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ItemScope — категория позиции промо-заказа.
type ItemScope string

const (
	ScopePrivateSellerAd ItemScope = "PRIVATE_SELLER_AD"
	ScopeYardCar         ItemScope = "YARD_CAR"
	ScopeYardBrand       ItemScope = "YARD_BRAND"
)

// OrderItem — одна оплачиваемая позиция заказа.
// DurationDays <= 0 означает, что срок действия продукта неизвестен
// и движок подставит срок по умолчанию.
type OrderItem struct {
	Product      ProductCode
	Scope        ItemScope
	DurationDays int
}

// PromotionOrder описывает промо-заказ, созданный внешним модулем оформления.
// CarID == nil для заказов уровня аккаунта/бренда.
type PromotionOrder struct {
	ID        string
	OwnerID   string
	CarID     *string
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
	PaidAt    *time.Time
}

// Source возвращает категорию источника для позиции заказа:
// позиции ярда дают YARD, остальные — PRIVATE_SELLER.
func (i OrderItem) Source() PromotionSource {
	if i.Scope == ScopeYardCar {
		return SourceYard
	}
	return SourcePrivateSeller
}

// AccountLevelOnly сообщает, все ли позиции заказа имеют аккаунт-уровневый scope.
func (o *PromotionOrder) AccountLevelOnly() bool {
	for _, item := range o.Items {
		if item.Scope != ScopeYardBrand {
			return false
		}
	}
	return true
}

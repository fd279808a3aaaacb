package domain

import "time"

// Account описывает аккаунт продавца (ярд или частный продавец).
type Account struct {
	ID        string
	Name      string
	IsYard    bool
	Promotion AccountPromotionState
	CreatedAt time.Time
	UpdatedAt *time.Time
}

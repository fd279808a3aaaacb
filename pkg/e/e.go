package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки согласования хранилищ
	ErrListingNotFound = fmt.Errorf("listing not found")
	ErrAccountNotFound = fmt.Errorf("account not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// Ошибки применения промо-заказов
	ErrOrderNotPaid       = fmt.Errorf("order is not paid")
	ErrOrderScopeMismatch = fmt.Errorf("order contains items outside the account scope")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrBrandRequired       = fmt.Errorf("listing brand is required")
	ErrModelRequired       = fmt.Errorf("listing model is required")
	ErrOwnerRequired       = fmt.Errorf("owner id is required")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrUnknownStatus       = fmt.Errorf("unknown publication status")
	ErrNoListings          = fmt.Errorf("no listing ids provided")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 429 Too Many Requests
	ErrRebuildThrottled = fmt.Errorf("rebuild was invoked too recently")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

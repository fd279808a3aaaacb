package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrBrandRequired),
		errors.Is(err, e.ErrModelRequired),
		errors.Is(err, e.ErrOwnerRequired),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrPriceMustBePositive),
		errors.Is(err, e.ErrUnknownStatus),
		errors.Is(err, e.ErrNoListings):
		return http.StatusBadRequest, unwrapMessage(err)
	case errors.Is(err, e.ErrListingNotFound),
		errors.Is(err, e.ErrOrderNotFound),
		errors.Is(err, e.ErrAccountNotFound):
		return http.StatusNotFound, unwrapMessage(err)
	case errors.Is(err, e.ErrOrderNotPaid),
		errors.Is(err, e.ErrOrderScopeMismatch):
		return http.StatusConflict, unwrapMessage(err)
	case errors.Is(err, e.ErrRebuildThrottled):
		return http.StatusTooManyRequests, e.ErrRebuildThrottled.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// unwrapMessage возвращает текст самой глубокой (сентинельной) ошибки,
// не раскрывая клиенту внутреннюю цепочку обёрток.
func unwrapMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSONBody декодирует тело запроса, отклоняя неизвестные поля.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

// ownerFromRequest извлекает идентификатор владельца из заголовка X-Owner-ID.
// Аутентификация — забота внешнего шлюза; хендлеры доверяют заголовку.
func ownerFromRequest(r *http.Request) (string, error) {
	ownerID := strings.TrimSpace(r.Header.Get("X-Owner-ID"))
	if ownerID == "" {
		return "", e.ErrOwnerRequired
	}
	return ownerID, nil
}

// parsePriceToKopecks converts a string like "599999.99" or "600000" to int64 kopecks.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - non-positive value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToKopecks(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return 0, e.ErrPriceMustBePositive
	}

	// Enforce max value (1B rub in kopecks)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	kopecks := d.Mul(decimal.NewFromInt(100)).Round(0)

	return kopecks.IntPart(), nil
}

package http

import (
	"net/http"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	listingUC usecase.ListingUC
	logger    logger.Logger
}

func NewListingHandler(listingUC usecase.ListingUC, logger logger.Logger) *ListingHandler {
	return &ListingHandler{listingUC: listingUC, logger: logger}
}

type createListingRequest struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        string   `json:"price"`
	Mileage      int64    `json:"mileage"`
	City         string   `json:"city"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	ImageURLs    []string `json:"image_urls"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type bulkStatusRequest struct {
	CarIDs []string `json:"car_ids"`
	Status string   `json:"status"`
}

// createListing
//
//	@Summary		Создание объявления
//	@Description	Создает объявление в инвентаре владельца со статусом draft
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			X-Owner-ID	header		string					true	"Идентификатор владельца"
//	@Param			request		body		createListingRequest	true	"Данные объявления"
//	@Success		201			{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/listings [post]
func (h *ListingHandler) createListing(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body createListingRequest
	if err := decodeJSONBody(r, &body); err != nil {
		h.logger.Warnf("%d bad create request: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	priceKopecks, err := parsePriceToKopecks(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	req := usecase.NewCreateListingReq(ownerID, body.Brand, body.Model, body.Year, priceKopecks)
	req.Mileage = body.Mileage
	req.City = body.City
	req.Transmission = body.Transmission
	req.FuelType = body.FuelType
	req.ImageURLs = body.ImageURLs

	listing, err := h.listingUC.CreateListing(r.Context(), req)
	if err != nil {
		h.logger.Warnf("create listing failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"car_id": listing.CarID,
		"status": listing.Status,
	})
}

// setStatus
//
//	@Summary		Смена статуса публикации
//	@Description	Переводит объявление в указанный статус (внешнее представление: DRAFT, HIDDEN, PUBLISHED)
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			X-Owner-ID	header		string					true	"Идентификатор владельца"
//	@Param			carID		path		string					true	"Идентификатор объявления"
//	@Param			request		body		setStatusRequest		true	"Новый статус"
//	@Success		200			{object}	map[string]interface{}	"Статус применён"
//	@Failure		400			{object}	ErrorResponse			"Неизвестный статус"
//	@Failure		404			{object}	ErrorResponse			"Объявление не найдено"
//	@Router			/listings/{carID}/status [patch]
func (h *ListingHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	carID := chi.URLParam(r, "carID")

	var body setStatusRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	err = h.listingUC.SetStatus(r.Context(), usecase.NewSetStatusReq(ownerID, carID, domain.ExternalStatus(body.Status)))
	if err != nil {
		h.logger.Warnf("set status failed for %s/%s: %s", ownerID, carID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"car_id": carID,
		"status": body.Status,
	})
}

// bulkSetStatus
//
//	@Summary		Массовая смена статуса
//	@Description	Применяет один переход статуса к списку объявлений владельца порциями
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			X-Owner-ID	header		string					true	"Идентификатор владельца"
//	@Param			request		body		bulkStatusRequest		true	"Список объявлений и статус"
//	@Success		200			{object}	map[string]interface{}	"Итог {total, updated, errors}"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/listings/bulk-status [post]
func (h *ListingHandler) bulkSetStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body bulkStatusRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.listingUC.BulkSetStatus(r.Context(), usecase.NewBulkStatusReq(ownerID, body.CarIDs, domain.ExternalStatus(body.Status)))
	if err != nil {
		h.logger.Warnf("bulk status failed for %s: %s", ownerID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"total":   res.Total,
		"updated": res.Updated,
		"errors":  res.Errors,
	})
}

// getPublicListing
//
//	@Summary		Публичная карточка объявления
//	@Description	Возвращает проекцию объявления с витрины (PUBLIC)
//	@Tags			listings
//	@Produce		json
//	@Param			carID	path		string			true	"Идентификатор объявления"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	ErrorResponse	"Объявление не опубликовано"
//	@Router			/listings/{carID} [get]
func (h *ListingHandler) getPublicListing(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "carID")

	listing, err := h.listingUC.GetPublicListing(r.Context(), carID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, listing)
}

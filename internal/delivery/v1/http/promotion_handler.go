package http

import (
	"net/http"

	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type PromotionHandler struct {
	promotionUC usecase.PromotionUC
	logger      logger.Logger
}

func NewPromotionHandler(promotionUC usecase.PromotionUC, logger logger.Logger) *PromotionHandler {
	return &PromotionHandler{promotionUC: promotionUC, logger: logger}
}

// applyOrder
//
//	@Summary		Применение промо-заказа
//	@Description	Применяет оплаченный промо-заказ к объявлению либо к аккаунту владельца
//	@Tags			orders
//	@Produce		json
//	@Param			X-Owner-ID	header		string					true	"Идентификатор владельца"
//	@Param			orderID		path		string					true	"Идентификатор заказа"
//	@Success		200			{object}	map[string]interface{}	"Заказ применён"
//	@Failure		404			{object}	ErrorResponse			"Заказ не найден"
//	@Failure		409			{object}	ErrorResponse			"Заказ не оплачен"
//	@Router			/orders/{orderID}/apply [post]
func (h *PromotionHandler) applyOrder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID := chi.URLParam(r, "orderID")

	if err := h.promotionUC.ApplyOrder(r.Context(), ownerID, orderID); err != nil {
		h.logger.Warnf("apply order %s failed for %s: %s", orderID, ownerID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"applied":  true,
	})
}

package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
)

type OwnerHandler struct {
	rebuildUC usecase.RebuildUC
	logger    logger.Logger
}

func NewOwnerHandler(rebuildUC usecase.RebuildUC, logger logger.Logger) *OwnerHandler {
	return &OwnerHandler{rebuildUC: rebuildUC, logger: logger}
}

// rebuild
//
//	@Summary		Пересборка витрины владельца
//	@Description	Сверяет все объявления владельца с витриной и чинит расхождения. Троттлится по владельцу.
//	@Tags			owners
//	@Produce		json
//	@Param			X-Owner-ID	header		string					true	"Идентификатор владельца"
//	@Success		200			{object}	map[string]interface{}	"Итог пересборки"
//	@Failure		429			{object}	ErrorResponse			"Слишком частые пересборки"
//	@Router			/owners/rebuild [post]
func (h *OwnerHandler) rebuild(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.rebuildUC.RebuildThrottled(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, e.ErrRebuildThrottled) {
			WriteError(w, err)
			return
		}

		h.logger.Warnf("rebuild failed for %s: %s", ownerID, err.Error())

		// Пересборка не прерывается досрочно: частичный итог отдаём клиенту.
		if res == nil {
			WriteError(w, err)
			return
		}

		WriteSuccess(w, http.StatusOK, rebuildResponseBody(res, false, err.Error()))
		return
	}

	WriteSuccess(w, http.StatusOK, rebuildResponseBody(res, true, "rebuild finished"))
}

func rebuildResponseBody(res *usecase.RebuildRes, success bool, message string) map[string]interface{} {
	return map[string]interface{}{
		"success":     success,
		"processed":   res.Processed,
		"upserted":    res.Upserted,
		"unpublished": res.Unpublished,
		"errors":      res.Errors,
		"message":     message,
	}
}

package http

import (
	_ "github.com/DRSN-tech/automarket-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(listingUC usecase.ListingUC, promotionUC usecase.PromotionUC, rebuildUC usecase.RebuildUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerListingRoutes(v1, NewListingHandler(listingUC, r.logger))
		registerPromotionRoutes(v1, NewPromotionHandler(promotionUC, r.logger))
		registerOwnerRoutes(v1, NewOwnerHandler(rebuildUC, r.logger))
	})
}

func registerListingRoutes(router chi.Router, h *ListingHandler) {
	router.Route("/listings", func(ls chi.Router) {
		ls.Post("/", h.createListing)
		ls.Post("/bulk-status", h.bulkSetStatus)
		ls.Get("/{carID}", h.getPublicListing)
		ls.Patch("/{carID}/status", h.setStatus)
	})
}

func registerPromotionRoutes(router chi.Router, h *PromotionHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/{orderID}/apply", h.applyOrder)
	})
}

func registerOwnerRoutes(router chi.Router, h *OwnerHandler) {
	router.Route("/owners", func(ow chi.Router) {
		ow.Post("/rebuild", h.rebuild)
	})
}

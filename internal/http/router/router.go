package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/storefront/internal/docs"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// NewRouter wires the page and event endpoints. A nil limiter disables rate limiting.
func NewRouter(srv *handlers.Server, logger *zap.Logger, limiter *rl.Limiter) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chiMid.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(mw.RateLimit(limiter))
		}

		r.Get("/", srv.PageHandler)
		r.Get("/fragments/cart", srv.CartFragmentHandler)
		r.Get("/fragments/products", srv.ProductsFragmentHandler)

		r.Route("/api", func(r chi.Router) {
			r.Get("/cart", srv.GetCartHandler)
			r.Delete("/cart", srv.ClearCartHandler)
			r.Post("/cart/items/{id}", srv.AddCartItemHandler)
			r.Put("/cart/items/{id}", srv.SetCartItemQuantityHandler)
			r.Delete("/cart/items/{id}", srv.RemoveCartItemHandler)

			r.Get("/search", srv.GetSearchHandler)
			r.Put("/search/term", srv.SetSearchTermHandler)
			r.Put("/search/category/{key}", srv.SetSearchCategoryHandler)
		})
	})

	return r
}

package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/storefront/internal/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/products", handler.CreateProduct)
	r.Get("/products/{id}", handler.GetProduct)
	r.Post("/products/{id}/stock", handler.IncreaseStock)

	r.Post("/orders", handler.PlaceOrder)
	r.Delete("/orders/{id}", handler.CancelOrder)

	r.Get("/billing/statement", handler.GetStatement)
	return r
}

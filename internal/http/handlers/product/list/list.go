// Package list implements the public HTTP handler that serves the catalog,
// built-in products unioned with the admin-authored overlay, keyed by
// category.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Service describes the catalog operation used by this handler.
type Service interface {
	List(ctx context.Context) (map[string][]models.Product, error)
}

// Handler handles HTTP requests for the catalog.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a list Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List the catalog
// @Description Returns all products grouped by category, overlay included.
// @Tags Products
// @Produce  json
// @Success 200 {object} response.Response "Catalog by category"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	catalog, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}

	render.JSON(w, r, response.OKWithData(catalog))
}

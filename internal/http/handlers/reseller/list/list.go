// Package list implements the admin HTTP handler that lists resellers.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Service describes the reseller operation used by this handler.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Reseller, error)
}

// Handler handles HTTP requests for listing resellers.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a list Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List resellers
// @Description Returns the reseller roster with sales and commissions.
// @Tags Resellers
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Page size, default 10"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} response.Response "Resellers"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/resellers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reseller.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	resellers, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list resellers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list resellers"))
		return
	}

	log.Info("resellers listed", slog.Int("count", len(resellers)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":     len(resellers),
		"resellers": resellers,
	}))
}

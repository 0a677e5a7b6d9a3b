// Package list implements the HTTP handler for listing ledger orders.
// Regular users see only their own orders; the admin sees everything and can
// narrow by status.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/order"
)

// Service describes the order operation used by this handler.
type Service interface {
	List(ctx context.Context, email, role, status string, limit, offset int) ([]*models.Order, error)
}

// Handler handles HTTP requests for listing orders.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a list Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List orders
// @Description Lists ledger orders in insertion order. Non-admin callers only see their own.
// @Tags Orders
// @Produce  json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, completed, rejected)"
// @Param limit query int false "Page size, default 10"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} response.Response "Orders"
// @Failure 400 {object} response.ErrorResponse "Unknown status filter"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /orders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	role, ok := r.Context().Value(middlewarectx.Role).(string)
	if !ok || role == "" {
		log.Error("role not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	status := r.URL.Query().Get("status")

	orders, err := h.service.List(r.Context(), email, role, status, limit, offset)
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			log.Error("unknown status filter", slog.String("status", status))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown status filter"))
			return
		}
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list orders"))
		return
	}

	log.Info("orders listed", slog.Int("count", len(orders)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":  len(orders),
		"orders": orders,
	}))
}

// Package setstatus implements the admin HTTP handler that verifies an order:
// a pending order becomes completed or rejected, and terminal orders never
// change again.
package setstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/services/order"
)

// Request carries the verification verdict.
type Request struct {
	Status string `json:"status" validate:"required,oneof=completed rejected"`
}

// Service describes the order operation used by this handler.
type Service interface {
	SetStatus(ctx context.Context, id, status string) error
}

// Handler handles HTTP requests for order verification.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a setstatus Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Verify an order
// @Description Sets a pending order to completed or rejected. Terminal orders are immutable.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param request body Request true "Verdict"
// @Success 200 {object} response.Response "Status updated"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or missing order id"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "Order not found"
// @Failure 409 {object} response.ErrorResponse "Order already verified"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/orders/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.setstatus"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing order id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing order id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.SetStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			log.Error("order not found", slog.String("order_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("order not found"))
		case errors.Is(err, order.ErrTerminalStatus):
			log.Error("order already verified", slog.String("order_id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("order already verified"))
		case errors.Is(err, order.ErrInvalidStatus):
			log.Error("unknown status", slog.String("status", req.Status))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown status"))
		default:
			log.Error("failed to update order status", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update order status"))
		}
		return
	}

	log.Info("order status updated", slog.String("order_id", id), slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":     id,
		"status": req.Status,
	}))
}

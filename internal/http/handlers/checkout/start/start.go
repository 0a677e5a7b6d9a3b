// Package start implements the HTTP handler that begins a checkout flow.
// It snapshots the cart and kicks off the payment processing simulation.
package start

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/services/checkout"
)

// Request selects the payment method for this checkout.
type Request struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=qris dana ovo gopay"`
}

// Service describes the checkout operation used by this handler.
type Service interface {
	Start(ctx context.Context, email, method string) error
}

// Handler handles HTTP requests for starting a checkout.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a start Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Start a checkout
// @Description Begins the payment processing flow for the current cart with the chosen method.
// @Tags Checkout
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Payment method"
// @Success 200 {object} response.Response "Flow started"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or empty cart"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 409 {object} response.ErrorResponse "Checkout already in progress"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.start"

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

	if err := h.service.Start(r.Context(), email, req.PaymentMethod); err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			log.Error("cart is empty", slog.String("email", email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("cart is empty"))
		case errors.Is(err, checkout.ErrInvalidMethod):
			log.Error("invalid payment method", slog.String("method", req.PaymentMethod))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid payment method"))
		case errors.Is(err, checkout.ErrFlowActive):
			log.Error("checkout already in progress", slog.String("email", email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("checkout already in progress"))
		default:
			log.Error("failed to start checkout", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to start checkout"))
		}
		return
	}

	log.Info("checkout started", slog.String("email", email), slog.String("method", req.PaymentMethod))
	render.JSON(w, r, response.OKWithData(map[string]any{"started": true}))
}

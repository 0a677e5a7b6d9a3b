// Package status implements the HTTP handler that reports the caller's
// checkout flow: state, progress percentage, cycling message and, once
// processing finished, the payment reference.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/services/checkout"
)

// Service describes the checkout operation used by this handler.
type Service interface {
	Status(ctx context.Context, email string) (*checkout.Status, error)
}

// Handler handles HTTP requests for checkout status polling.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a status Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Poll the checkout status
// @Description Returns the current flow state. Without a flow the state is derived from the cart.
// @Tags Checkout
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Flow snapshot"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /checkout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.status"

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

	st, err := h.service.Status(r.Context(), email)
	if err != nil {
		log.Error("failed to read checkout status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read checkout status"))
		return
	}

	render.JSON(w, r, response.OKWithData(st))
}

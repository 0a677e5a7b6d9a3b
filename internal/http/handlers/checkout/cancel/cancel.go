// Package cancel implements the HTTP handler that dismisses the caller's
// checkout flow. Every pending timer stops and no order is written.
package cancel

import (
	"context"
	"errors"
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
	Cancel(ctx context.Context, email string) error
}

// Handler handles HTTP requests for cancelling a checkout.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a cancel Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Cancel the checkout
// @Description Dismisses the active flow. Cancelling without a flow is an error.
// @Tags Checkout
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Flow cancelled"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "No active checkout"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /checkout [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.cancel"

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

	if err := h.service.Cancel(r.Context(), email); err != nil {
		if errors.Is(err, checkout.ErrNoFlow) {
			log.Error("no active checkout", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("no active checkout"))
			return
		}
		log.Error("failed to cancel checkout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to cancel checkout"))
		return
	}

	log.Info("checkout cancelled", slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{"cancelled": true}))
}

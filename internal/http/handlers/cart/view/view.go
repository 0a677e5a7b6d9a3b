// Package view implements the HTTP handler that returns the caller's cart.
package view

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Service describes the cart operation used by this handler.
type Service interface {
	Get(ctx context.Context, email string) (models.Cart, error)
}

// Handler handles HTTP requests for reading the cart.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a view Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary View the cart
// @Description Returns the caller's current cart lines and total. An expired cart reads as empty.
// @Tags Cart
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Cart with total"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /cart [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.view"

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

	cart, err := h.service.Get(r.Context(), email)
	if err != nil {
		log.Error("failed to read cart", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read cart"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"lines": cart.Lines,
		"total": cart.Total(),
	}))
}

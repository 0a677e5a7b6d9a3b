// Package remove implements the HTTP handler that deletes one line from the
// cart by its id. Removing an absent id is a no-op.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Service describes the cart operation used by this handler.
type Service interface {
	RemoveLine(ctx context.Context, email, id string) (models.Cart, error)
}

// Handler handles HTTP requests for removing cart lines.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a remove Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Remove a line from the cart
// @Description Deletes the line with the given id. Unknown ids change nothing.
// @Tags Cart
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Cart line id"
// @Success 200 {object} response.Response "Updated cart with total"
// @Failure 400 {object} response.ErrorResponse "Missing line id"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /cart/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.remove"

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

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing line id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing line id"))
		return
	}

	cart, err := h.service.RemoveLine(r.Context(), email, id)
	if err != nil {
		log.Error("failed to remove cart line", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove from cart"))
		return
	}

	log.Info("cart line removed", slog.String("email", email), slog.String("line_id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"lines": cart.Lines,
		"total": cart.Total(),
	}))
}

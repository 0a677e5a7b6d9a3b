// Package stats implements the HTTP handler for the reseller dashboard.
package stats

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
	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/reseller"
)

// Service describes the reseller operation used by this handler.
type Service interface {
	Stats(ctx context.Context, email string) (*models.ResellerStats, error)
}

// Handler handles HTTP requests for reseller statistics.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a stats Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Reseller dashboard
// @Description Returns the caller's reseller record with monthly estimates.
// @Tags Resellers
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Reseller stats"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Not a reseller"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /reseller/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reseller.stats"

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

	st, err := h.service.Stats(r.Context(), email)
	if err != nil {
		if errors.Is(err, reseller.ErrNotFound) {
			log.Error("not a reseller", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("not a reseller"))
			return
		}
		log.Error("failed to read reseller stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read reseller stats"))
		return
	}

	render.JSON(w, r, response.OKWithData(st))
}

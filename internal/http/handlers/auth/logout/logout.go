// Package logout implements the HTTP handler for ending a session.
// Sessions are stateless JWTs, so logout only confirms the client-side drop.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
)

// Handler handles HTTP requests for logout.
type Handler struct {
	log *slog.Logger
}

// New creates a logout Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Sign out
// @Description Acknowledges the end of the session. The client discards its token.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Logged out"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, _ := r.Context().Value(middlewarectx.User).(string)
	log.Info("user logged out", slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{"logged_out": true}))
}

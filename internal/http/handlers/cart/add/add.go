// Package add implements the HTTP handler that puts a line into the cart.
// Adding a line with an already present id merges quantities instead of
// duplicating the line.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Request is the line to add.
type Request struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// Service describes the cart operation used by this handler.
type Service interface {
	AddLine(ctx context.Context, email string, line models.CartLine) (models.Cart, error)
}

// Handler handles HTTP requests for adding cart lines.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates an add Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Add a line to the cart
// @Description Adds a selected product line. Same line id merges quantities.
// @Tags Cart
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Cart line"
// @Success 200 {object} response.Response "Updated cart with total"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /cart [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.add"

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

	cart, err := h.service.AddLine(r.Context(), email, models.CartLine{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		log.Error("failed to add cart line", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add to cart"))
		return
	}

	log.Info("cart line added", slog.String("email", email), slog.String("line_id", req.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"lines": cart.Lines,
		"total": cart.Total(),
	}))
}

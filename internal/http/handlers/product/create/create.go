// Package create implements the admin HTTP handler that adds a product to
// the catalog overlay.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/guswanstore/guswanmy/internal/http/response"
	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Request is an admin-authored product.
type Request struct {
	Category    string             `json:"category" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	Color       string             `json:"color"`
	Pricing     []models.PriceTier `json:"pricing" validate:"required,min=1,dive"`
}

// Service describes the catalog operation used by this handler.
type Service interface {
	AddProduct(ctx context.Context, category string, p models.Product) error
}

// Handler handles HTTP requests for adding overlay products.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a create Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Add a catalog product
// @Description Stores an admin-authored product in the overlay under a category.
// @Tags Products
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Product"
// @Success 200 {object} response.Response "Created product"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Pricing:     req.Pricing,
	}
	if err := h.service.AddProduct(r.Context(), req.Category, product); err != nil {
		log.Error("failed to add product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add product"))
		return
	}

	log.Info("product added",
		slog.String("category", req.Category),
		slog.String("product_id", product.ID))
	render.JSON(w, r, response.OKWithData(product))
}

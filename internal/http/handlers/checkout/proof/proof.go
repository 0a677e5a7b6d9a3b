// Package proof implements the HTTP handler that finishes a checkout by
// attaching the payment proof. On success the flow becomes a pending order
// and the ordered lines leave the cart.
package proof

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
	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/checkout"
)

// Request carries the payment proof artifact.
type Request struct {
	ProofImage string `json:"proof_image" validate:"required"`
}

// Service describes the checkout operation used by this handler.
type Service interface {
	SubmitProof(ctx context.Context, email, proofImage string) (*models.Order, error)
}

// Handler handles HTTP requests for submitting payment proof.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a proof Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Submit payment proof
// @Description Attaches the proof to an awaiting flow and records the pending order.
// @Tags Checkout
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Payment proof"
// @Success 200 {object} response.Response "Recorded order"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "No active checkout"
// @Failure 409 {object} response.ErrorResponse "Flow is not awaiting proof"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /checkout/proof [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.proof"

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

	order, err := h.service.SubmitProof(r.Context(), email, req.ProofImage)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNoFlow):
			log.Error("no active checkout", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("no active checkout"))
		case errors.Is(err, checkout.ErrNotAwaitingProof):
			log.Error("flow is not awaiting proof", slog.String("email", email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("checkout is not awaiting proof"))
		case errors.Is(err, checkout.ErrMissingProof):
			log.Error("payment proof is required")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("payment proof is required"))
		default:
			log.Error("failed to submit proof", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit proof"))
		}
		return
	}

	log.Info("order recorded",
		slog.String("email", email),
		slog.String("order_id", order.ID))
	render.JSON(w, r, response.OKWithData(order))
}

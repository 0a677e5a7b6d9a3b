package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/guswanstore/guswanmy/internal/catalog"
	"github.com/guswanstore/guswanmy/internal/http/handlers/auth/login"
	"github.com/guswanstore/guswanmy/internal/http/handlers/auth/logout"
	"github.com/guswanstore/guswanmy/internal/http/handlers/auth/register"
	cartadd "github.com/guswanstore/guswanmy/internal/http/handlers/cart/add"
	cartremove "github.com/guswanstore/guswanmy/internal/http/handlers/cart/remove"
	cartview "github.com/guswanstore/guswanmy/internal/http/handlers/cart/view"
	checkoutcancel "github.com/guswanstore/guswanmy/internal/http/handlers/checkout/cancel"
	checkoutproof "github.com/guswanstore/guswanmy/internal/http/handlers/checkout/proof"
	checkoutstart "github.com/guswanstore/guswanmy/internal/http/handlers/checkout/start"
	checkoutstatus "github.com/guswanstore/guswanmy/internal/http/handlers/checkout/status"
	orderlist "github.com/guswanstore/guswanmy/internal/http/handlers/order/list"
	ordersetstatus "github.com/guswanstore/guswanmy/internal/http/handlers/order/setstatus"
	productcreate "github.com/guswanstore/guswanmy/internal/http/handlers/product/create"
	productlist "github.com/guswanstore/guswanmy/internal/http/handlers/product/list"
	resellercreate "github.com/guswanstore/guswanmy/internal/http/handlers/reseller/create"
	resellerlist "github.com/guswanstore/guswanmy/internal/http/handlers/reseller/list"
	resellerstats "github.com/guswanstore/guswanmy/internal/http/handlers/reseller/stats"
	"github.com/guswanstore/guswanmy/internal/http/middlewarectx"
	"github.com/guswanstore/guswanmy/internal/lib/jwt"
	"github.com/guswanstore/guswanmy/internal/models"
	authservice "github.com/guswanstore/guswanmy/internal/services/auth"
	cartservice "github.com/guswanstore/guswanmy/internal/services/cart"
	checkoutservice "github.com/guswanstore/guswanmy/internal/services/checkout"
	orderservice "github.com/guswanstore/guswanmy/internal/services/order"
	resellerservice "github.com/guswanstore/guswanmy/internal/services/reseller"
)

// RegisterRoutes registers every route of the storefront.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.Service,
	cartService *cartservice.Service,
	checkoutService *checkoutservice.Service,
	orderService *orderservice.Service,
	resellerService *resellerservice.Service,
	catalogService *catalog.Service,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/products", productlist.New(logger, catalogService).ServeHTTP)

		// JWT authenticated group
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/logout", logout.New(logger).ServeHTTP)

			r.Get("/cart", cartview.New(logger, cartService).ServeHTTP)
			r.Post("/cart", cartadd.New(logger, cartService).ServeHTTP)
			r.Delete("/cart/{id}", cartremove.New(logger, cartService).ServeHTTP)

			r.Post("/checkout", checkoutstart.New(logger, checkoutService).ServeHTTP)
			r.Get("/checkout", checkoutstatus.New(logger, checkoutService).ServeHTTP)
			r.Delete("/checkout", checkoutcancel.New(logger, checkoutService).ServeHTTP)
			r.Post("/checkout/proof", checkoutproof.New(logger, checkoutService).ServeHTTP)

			r.Get("/orders", orderlist.New(logger, orderService).ServeHTTP)
			r.Get("/reseller/stats", resellerstats.New(logger, resellerService).ServeHTTP)

			// Admin endpoints
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(models.RoleAdmin, logger))

				r.Patch("/admin/orders/{id}", ordersetstatus.New(logger, orderService).ServeHTTP)
				r.Get("/admin/resellers", resellerlist.New(logger, resellerService).ServeHTTP)
				r.Post("/admin/resellers", resellercreate.New(logger, resellerService).ServeHTTP)
				r.Post("/admin/products", productcreate.New(logger, catalogService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

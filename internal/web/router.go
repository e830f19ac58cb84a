// Package web is the view layer: chi routes reading from and dispatching
// to the cart, session and checkout managers.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/NangRotha/Cloths-Frontend-User/internal/session"
)

type RouterDeps struct {
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Auth     *AuthHandler
	Orders   *OrdersHandler
	Sessions *session.Manager
	Timeout  time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(deps.Timeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.AllowAll().Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Products.List)
			r.Get("/{id}", deps.Products.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.Get)
			r.Delete("/", deps.Cart.Clear)
			r.Post("/items", deps.Cart.AddItem)
			r.Put("/items/{product_id}", deps.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", deps.Cart.RemoveItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/register", deps.Auth.Register)
			r.Post("/logout", deps.Auth.Logout)
			r.Get("/me", deps.Auth.Me)
			r.Get("/google", deps.Auth.GoogleLogin)
			r.Get("/google/callback", deps.Auth.GoogleCallback)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(deps.Sessions))

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", deps.Checkout.Summary)
				r.Post("/", deps.Checkout.Submit)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", deps.Orders.List)
				r.Get("/{id}", deps.Orders.Get)
			})
		})
	})

	return r
}

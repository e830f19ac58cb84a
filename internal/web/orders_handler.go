package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

// OrdersAPI is the slice of the shop API the order-history views need.
type OrdersAPI interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	Order(ctx context.Context, id int64) (domain.Order, error)
}

type OrdersHandler struct {
	orders OrdersAPI
}

func NewOrdersHandler(orders OrdersAPI) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Orders(r.Context())
	if err != nil {
		handleShopError(w, r, err, "Failed to load your orders.")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be a positive integer")
		return
	}

	order, err := h.orders.Order(r.Context(), id)
	if err != nil {
		handleShopError(w, r, err, "Failed to load the order.")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

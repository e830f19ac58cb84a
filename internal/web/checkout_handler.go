package web

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/NangRotha/Cloths-Frontend-User/internal/cart"
	"github.com/NangRotha/Cloths-Frontend-User/internal/checkout"
	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

// shippingFee is the flat fee the order summary displays. It is never part
// of the order submission; the shop API prices shipping itself.
var shippingFee = decimal.NewFromInt(5)

type CheckoutHandler struct {
	checkout *checkout.Manager
	cart     *cart.Cart
}

func NewCheckoutHandler(checkout *checkout.Manager, cart *cart.Cart) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		cart:     cart,
	}
}

type CheckoutSummaryResponse struct {
	Items       []domain.CartItem `json:"items"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	ShippingFee decimal.Decimal   `json:"shipping_fee"`
	Total       decimal.Decimal   `json:"total"`
	Status      checkout.Status   `json:"status"`
}

type CheckoutResultResponse struct {
	Order  *domain.Order   `json:"order"`
	Status checkout.Status `json:"status"`
}

func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	subtotal := h.cart.Total()

	respondJSON(w, http.StatusOK, CheckoutSummaryResponse{
		Items:       items,
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Total:       subtotal.Add(shippingFee),
		Status:      h.checkout.Status(),
	})
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.checkout.Submit(r.Context(), form)
	if err != nil {
		handleShopError(w, r, err, "Order submission failed. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResultResponse{
		Order:  order,
		Status: h.checkout.Status(),
	})
}

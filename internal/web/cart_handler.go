package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/NangRotha/Cloths-Frontend-User/internal/cart"
	"github.com/NangRotha/Cloths-Frontend-User/internal/catalog"
	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type CartHandler struct {
	cart    *cart.Cart
	catalog *catalog.Service
}

func NewCartHandler(cart *cart.Cart, catalog *catalog.Service) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// Stock limits are the shop API's business; the cart only needs the
	// product's identity and price.
	product, err := h.catalog.Product(r.Context(), req.ProductID)
	if err != nil {
		handleShopError(w, r, err, "Failed to load the product.")
		return
	}

	h.cart.Add(*product, req.Quantity)
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero or below removes the line, matching the decrement-to-remove
	// behavior of the quantity controls.
	h.cart.UpdateQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	h.cart.Remove(productID)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		Items: items,
		Total: h.cart.Total(),
		Count: h.cart.Count(),
	}
}

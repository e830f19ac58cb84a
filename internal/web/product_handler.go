package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/NangRotha/Cloths-Frontend-User/internal/catalog"
	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type ProductHandler struct {
	catalog    *catalog.Service
	apiBaseURL string
}

func NewProductHandler(catalog *catalog.Service, apiBaseURL string) *ProductHandler {
	return &ProductHandler{
		catalog:    catalog,
		apiBaseURL: apiBaseURL,
	}
}

type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `json:"stock_quantity"`
	InStock       bool            `json:"in_stock"`
}

type ProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Products(r.Context())
	if err != nil {
		handleShopError(w, r, err, "Failed to load products.")
		return
	}

	products := make([]ProductResponse, len(result))
	for i, p := range result {
		products[i] = h.toResponse(p)
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{
		Products:   products,
		Categories: domain.Categories(result),
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		handleShopError(w, r, err, "Failed to load the product.")
		return
	}

	respondJSON(w, http.StatusOK, h.toResponse(*product))
}

func (h *ProductHandler) toResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		ImageURL:      domain.ResolveImageURL(h.apiBaseURL, p.ImageURL),
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
	}
}

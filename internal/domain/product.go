package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `json:"stock_quantity"`
}

func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// ResolveImageURL turns the relative image path the API returns into an
// absolute URL against the API base. Empty paths stay empty.
func ResolveImageURL(baseURL, imagePath string) string {
	if imagePath == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(imagePath, "/")
}

// Categories collects the distinct product categories in first-seen order,
// skipping blanks.
func Categories(products []Product) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

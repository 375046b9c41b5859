package services

import (
	"context"
	"strings"

	"supplysight/internal/analytics"
	"supplysight/internal/models"
)

// ProductSource is the read surface the query engine needs from the store.
type ProductSource interface {
	Products() []models.Product
}

type QueryService interface {
	FindProducts(ctx context.Context, filter models.ProductFilter) []models.Product
}

type queryService struct {
	source ProductSource
}

func NewQueryService(source ProductSource) QueryService {
	return &queryService{source: source}
}

func (s *queryService) FindProducts(ctx context.Context, filter models.ProductFilter) []models.Product {
	return FilterProducts(s.source.Products(), filter)
}

// FilterProducts applies the search/status/warehouse predicates to the given
// product set. Predicates compose with AND; the input order is preserved. An
// empty result is valid output, not a failure.
func FilterProducts(products []models.Product, filter models.ProductFilter) []models.Product {
	search := strings.ToLower(filter.Search)
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if filter.Warehouse != "" && p.Warehouse != filter.Warehouse {
			continue
		}
		if filter.Status != models.StatusFilterAny &&
			analytics.ClassifyProduct(p) != models.Status(filter.Status) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesSearch reports whether the lowercased term occurs in the record's
// name, sku, or id.
func matchesSearch(p models.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.SKU), term) ||
		strings.Contains(strings.ToLower(p.ID), term)
}

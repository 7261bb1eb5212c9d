package services

import (
	"sync"

	"warehouse-console/models"
)

// ProductDetails are the per-product fields the list view loads row by row.
type ProductDetails struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
}

// DetailFetcher loads the detail fields for one product uuid.
type DetailFetcher func(uuid string) (ProductDetails, error)

// EnrichProducts merges detail fields into a page of summary rows, one fetch
// per row fanned out concurrently. The result keeps the input order; a row
// whose fetch fails keeps its summary fields only and never fails the page.
func EnrichProducts(products []models.Product, fetch DetailFetcher) []models.Product {
	if len(products) == 0 || fetch == nil {
		return products
	}

	enriched := make([]models.Product, len(products))
	copy(enriched, products)

	var wg sync.WaitGroup
	for i := range enriched {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			details, err := fetch(enriched[i].UUID)
			if err != nil {
				return
			}
			enriched[i].Description = details.Description
			enriched[i].Weight = details.Weight
			enriched[i].Height = details.Height
			enriched[i].Width = details.Width
		}(i)
	}
	wg.Wait()

	return enriched
}

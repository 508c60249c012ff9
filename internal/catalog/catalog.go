package catalog

import (
	"errors"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrProductNotFound is returned when a product id is not part of the catalog.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the immutable, ordered set of products captured at startup.
type Catalog struct {
	products []models.Product
}

// New captures products in the given order. When an id repeats, the first
// occurrence wins lookups but every record stays in the listing.
func New(products []models.Product) *Catalog {
	captured := make([]models.Product, len(products))
	copy(captured, products)
	return &Catalog{products: captured}
}

// All returns the products in catalog order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Lookup retrieves a product by its ID.
func (c *Catalog) Lookup(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

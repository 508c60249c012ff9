package dom

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrMissingTarget is returned when the page lacks an insertion point that an
// operation cannot do without.
var ErrMissingTarget = errors.New("page insertion point missing")

var productCardTmpl = template.Must(template.New("product_card").Parse(
	`<div class="product" data-category="{{.Category}}">` +
		`<img src="{{.Image}}" alt="{{.Name}}">` +
		`<div class="product-txt">` +
		`<h4>{{.Name}}</h4>` +
		`<p class="product-text">{{.Description}}</p>` +
		`<p class="price"><span class="current-price">{{.PriceLabel}}</span></p>` +
		`<button type="button" class="btn-add" data-id="{{.ID}}">Add to cart</button>` +
		`</div></div>`))

// SeedProducts replaces the product grid with one card per product, for catalogs
// that do not come from the page itself.
func (p *Page) SeedProducts(products []models.Product) error {
	grid := p.doc.Find(ProductsGridSelector).First()
	if grid.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrMissingTarget, ProductsGridSelector)
	}

	var buf bytes.Buffer
	for _, prod := range products {
		if prod.PriceLabel == "" {
			prod.PriceLabel = models.FormatPrice(prod.Price, p.unit)
		}
		if err := productCardTmpl.Execute(&buf, prod); err != nil {
			return fmt.Errorf("render product %s: %w", prod.ID, err)
		}
	}
	grid.SetHtml(buf.String())
	return nil
}

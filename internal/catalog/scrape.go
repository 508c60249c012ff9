package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rogerio-castellano/storefront/internal/models"
)

// Selectors used to read product cards from the storefront markup.
const (
	ProductSelector     = ".product"
	AddButtonSelector   = ".btn-add"
	NameSelector        = "h4"
	DescriptionSelector = ".product-text"
	PriceSelector       = "#currentPrice, .current-price"
	ImageSelector       = "img"
)

// ScrapeDocument captures every product card of doc as a catalog record, in document
// order. Cards without an id or with an unreadable price are skipped; the returned
// error joins one entry per skipped card while the remaining records are still returned.
func ScrapeDocument(doc *goquery.Document) ([]models.Product, error) {
	var (
		products []models.Product
		errs     []error
	)

	doc.Find(ProductSelector).Each(func(i int, card *goquery.Selection) {
		p, err := scrapeCard(card)
		if err != nil {
			errs = append(errs, fmt.Errorf("product card %d: %w", i, err))
			return
		}
		products = append(products, p)
	})

	return products, errors.Join(errs...)
}

func scrapeCard(card *goquery.Selection) (models.Product, error) {
	id, ok := card.Find(AddButtonSelector).First().Attr("data-id")
	if !ok || strings.TrimSpace(id) == "" {
		return models.Product{}, errors.New("missing product id")
	}

	name := strings.TrimSpace(card.Find(NameSelector).First().Text())
	description := strings.TrimSpace(card.Find(DescriptionSelector).First().Text())
	priceLabel := strings.TrimSpace(card.Find(PriceSelector).First().Text())
	image, _ := card.Find(ImageSelector).First().Attr("src")

	price, err := models.ParsePrice(priceLabel)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		PriceLabel:  priceLabel,
		Image:       image,
		Category:    Classify(name, description),
		Element:     card,
	}, nil
}

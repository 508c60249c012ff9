package models

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// Category is the fixed classification assigned to every catalog product.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryAccessories Category = "accessories"
	CategoryAudio       Category = "audio"
	CategoryComputers   Category = "computers"
	CategoryMobile      Category = "mobile"
	CategoryGaming      Category = "gaming"
	CategoryNetworking  Category = "networking"
	CategoryStorage     Category = "storage"
	CategoryElectronics Category = "electronics"
)

// Categories lists every product category in classification priority order,
// with the fallback last.
var Categories = []Category{
	CategoryAccessories,
	CategoryAudio,
	CategoryComputers,
	CategoryMobile,
	CategoryGaming,
	CategoryNetworking,
	CategoryStorage,
	CategoryElectronics,
}

// ParseCategory normalizes a category selector. Category links carry their key as a
// fragment ("#audio"), so a leading '#' is dropped.
func ParseCategory(key string) Category {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "#")
	if key == "" {
		return CategoryAll
	}
	return Category(key)
}

// Valid reports whether c is a known category or the "all" selector.
func (c Category) Valid() bool {
	if c == CategoryAll {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a catalog entry captured from the storefront page.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label,omitempty"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`

	// Element points at the product's node in the page. The record does not own it.
	Element *goquery.Selection `json:"-"`
}

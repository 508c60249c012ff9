package catalog

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

type yamlProduct struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
}

// LoadYAML reads a product list from a YAML file of the form
//
//	products:
//	  - id: p1
//	    name: Wireless Mouse
//	    price: "$19.99"
func LoadYAML(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseYAML(raw)
}

// ParseYAML decodes a YAML product list. Categories are classified here since the
// file does not carry them.
func ParseYAML(raw []byte) ([]models.Product, error) {
	var doc struct {
		Products []yamlProduct `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	products := make([]models.Product, 0, len(doc.Products))
	for i, yp := range doc.Products {
		if yp.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		price, err := models.ParsePrice(yp.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", yp.ID, err)
		}
		products = append(products, models.Product{
			ID:          yp.ID,
			Name:        yp.Name,
			Description: yp.Description,
			Price:       price,
			PriceLabel:  yp.Price,
			Image:       yp.Image,
			Category:    Classify(yp.Name, yp.Description),
		})
	}
	return products, nil
}

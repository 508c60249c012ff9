package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// PostgresSource reads the product list from a products table.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load returns every product ordered by position, then id.
func (s *PostgresSource) Load(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, image FROM products ORDER BY position, id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = Classify(p.Name, p.Description)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

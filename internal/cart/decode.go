package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrInvalidCart is returned by Decode for saved state that breaks cart invariants.
var ErrInvalidCart = errors.New("invalid saved cart")

// Decode parses a saved cart and checks that every line has an id, a positive
// quantity, a non-negative price, and that no id repeats.
func Decode(raw string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if items == nil {
		return []models.CartItem{}, nil
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		switch {
		case item.ID == "":
			return nil, fmt.Errorf("%w: line %d has no id", ErrInvalidCart, i)
		case item.Quantity < 1:
			return nil, fmt.Errorf("%w: line %s has quantity %d", ErrInvalidCart, item.ID, item.Quantity)
		case item.Price.IsNegative():
			return nil, fmt.Errorf("%w: line %s has negative price", ErrInvalidCart, item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%w: line %s repeats", ErrInvalidCart, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return items, nil
}

package cart

import "github.com/rogerio-castellano/storefront/internal/models"

type nopView struct{}

func (nopView) RenderSummary([]models.CartItem, models.Money) {}
func (nopView) RenderCount(int)                               {}

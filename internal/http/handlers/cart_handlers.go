package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetCartHandler godoc
// @Summary Current cart
// @Description Lists the cart lines with the cached total and the badge count
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /api/cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.cartResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Description Unknown products leave the cart unchanged
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResponse
// @Router /api/cart/items/{id} [post]
func (s *Server) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	if err := s.cart.AddItem(r.Context(), id); err != nil {
		s.logger.Warn("cart not saved", zap.String("op", "add"), zap.String("product_id", id), zap.Error(err))
	}
	resp := s.cartResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// RemoveCartItemHandler godoc
// @Summary Remove a product line from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResponse
// @Router /api/cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	if err := s.cart.RemoveItem(r.Context(), id); err != nil {
		s.logger.Warn("cart not saved", zap.String("op", "remove"), zap.String("product_id", id), zap.Error(err))
	}
	resp := s.cartResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// SetCartItemQuantityHandler godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity body QuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {array} ValidationError
// @Router /api/cart/items/{id} [put]
func (s *Server) SetCartItemQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req); len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	if err := s.cart.SetQuantity(r.Context(), id, *req.Quantity); err != nil {
		s.logger.Warn("cart not saved", zap.String("op", "set_quantity"), zap.String("product_id", id), zap.Error(err))
	}
	resp := s.cartResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /api/cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if err := s.cart.Clear(r.Context()); err != nil {
		s.logger.Warn("cart not saved", zap.String("op", "clear"), zap.Error(err))
	}
	resp := s.cartResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"bytes"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/dom"
	"go.uber.org/zap"
)

// PageHandler godoc
// @Summary Storefront page
// @Description The whole page with the current cart and search state applied
// @Tags page
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (s *Server) PageHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer

	s.mu.Lock()
	err := s.page.Render(&buf)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	s.respondHTML(w, buf.String())
}

// CartFragmentHandler godoc
// @Summary Cart fragment
// @Tags page
// @Produce html
// @Success 200 {string} string "HTML fragment"
// @Failure 404 {string} string "Not found"
// @Router /fragments/cart [get]
func (s *Server) CartFragmentHandler(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, dom.CartSelector)
}

// ProductsFragmentHandler godoc
// @Summary Products fragment
// @Tags page
// @Produce html
// @Success 200 {string} string "HTML fragment"
// @Failure 404 {string} string "Not found"
// @Router /fragments/products [get]
func (s *Server) ProductsFragmentHandler(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, dom.ProductsSelector)
}

func (s *Server) fragment(w http.ResponseWriter, selector string) {
	s.mu.Lock()
	body, ok := s.page.Fragment(selector)
	s.mu.Unlock()

	if !ok {
		http.Error(w, "fragment not found", http.StatusNotFound)
		return
	}
	s.respondHTML(w, body)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

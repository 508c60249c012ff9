package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/models"
	"go.uber.org/zap"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.logger.Warn("failed to write JSON response", zap.Error(err))
	}
}

func (s *Server) respondHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, body); err != nil {
		s.logger.Warn("failed to write HTML response", zap.Error(err))
	}
}

// cartResponse must be called with s.mu held.
func (s *Server) cartResponse() CartResponse {
	items := s.cart.Items()
	total := s.cart.Total()
	resp := CartResponse{
		Items:      make([]CartItemResponse, len(items)),
		Total:      total.Amount.StringFixed(2),
		TotalLabel: total.String(),
		Count:      s.cart.Count(),
	}
	for i, item := range items {
		resp.Items[i] = CartItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		}
	}
	return resp
}

// searchResponse must be called with s.mu held.
func (s *Server) searchResponse() SearchResponse {
	products := s.filter.FilteredProducts()
	resp := SearchResponse{
		Term:     s.filter.SearchTerm(),
		Category: string(s.filter.CurrentCategory()),
		Shown:    len(products),
		Total:    len(s.filter.Products()),
		Products: make([]ProductResponse, len(products)),
	}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	return resp
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Category:    string(p.Category),
	}
}

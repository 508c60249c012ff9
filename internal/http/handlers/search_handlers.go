package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetSearchHandler godoc
// @Summary Current search state
// @Description Returns the term, the category and the filtered products in catalog order
// @Tags search
// @Produce json
// @Success 200 {object} SearchResponse
// @Router /api/search [get]
func (s *Server) GetSearchHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.searchResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// SetSearchTermHandler godoc
// @Summary Set the search term
// @Description Matching is a case-insensitive substring test on name and description
// @Tags search
// @Accept json
// @Produce json
// @Param term body SearchTermRequest true "Search term, empty clears it"
// @Success 200 {object} SearchResponse
// @Failure 400 {array} ValidationError
// @Router /api/search/term [put]
func (s *Server) SetSearchTermHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchTermRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSearchTerm(req); len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	s.filter.SetSearchTerm(*req.Term)
	resp := s.searchResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

// SetSearchCategoryHandler godoc
// @Summary Select a category
// @Description "all" removes the category constraint
// @Tags search
// @Produce json
// @Param key path string true "Category key"
// @Success 200 {object} SearchResponse
// @Router /api/search/category/{key} [put]
func (s *Server) SetSearchCategoryHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	s.mu.Lock()
	s.filter.SetCategory(key)
	resp := s.searchResponse()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, resp)
}

package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/testutil"
)

func productIDs(resp handlers.SearchResponse) []string {
	ids := make([]string, len(resp.Products))
	for i, p := range resp.Products {
		ids[i] = p.ID
	}
	return ids
}

func TestGetSearchHandler_Initial(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/search", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decode[handlers.SearchResponse](t, w)
	if resp.Category != "all" || resp.Term != "" {
		t.Errorf("unexpected initial state %q / %q", resp.Category, resp.Term)
	}
	if got := strings.Join(productIDs(resp), ","); got != "1,2,3,4,5,6,7,8" {
		t.Errorf("expected catalog order, got %s", got)
	}
	if resp.Shown != 8 || resp.Total != 8 {
		t.Errorf("expected 8 of 8, got %d of %d", resp.Shown, resp.Total)
	}
}

func TestSetSearchTermHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/search/term", handlers.SearchTermRequest{Term: strPtr("Wireless")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[handlers.SearchResponse](t, w)
	if resp.Term != "wireless" {
		t.Errorf("expected lowercased term, got %q", resp.Term)
	}
	if got := strings.Join(productIDs(resp), ","); got != "1,5" {
		t.Errorf("expected products 1 and 5, got %s", got)
	}

	w = env.do(t, http.MethodGet, "/fragments/products", nil)
	doc := testutil.ParseHTML(t, w.Body.Bytes())
	if got := doc.Find("#resultsCount").Text(); got != "2" {
		t.Errorf("expected counter 2, got %q", got)
	}
	if got := doc.Find(".product h4 mark.search-highlight").First().Text(); got != "Wireless" {
		t.Errorf("expected highlighted name, got %q", got)
	}
	if got := doc.Find(`.product[data-visible="false"]`).Length(); got != 6 {
		t.Errorf("expected 6 hidden cards, got %d", got)
	}
}

func TestSetSearchTermHandler_NoResults(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/search/term", handlers.SearchTermRequest{Term: strPtr("toaster")})
	resp := decode[handlers.SearchResponse](t, w)
	if resp.Shown != 0 || len(resp.Products) != 0 {
		t.Errorf("expected no results, got %d", resp.Shown)
	}

	w = env.do(t, http.MethodGet, "/fragments/products", nil)
	doc := testutil.ParseHTML(t, w.Body.Bytes())
	if style := doc.Find(".no-results").AttrOr("style", ""); style != "display: block" {
		t.Errorf("expected visible no-results panel, got %q", style)
	}
}

func TestSetSearchTermHandler_Invalid(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/search/term", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	w = env.do(t, http.MethodPut, "/api/search/term", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	long := strings.Repeat("a", 201)
	w = env.do(t, http.MethodPut, "/api/search/term", handlers.SearchTermRequest{Term: &long})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	errs := decode[[]handlers.ValidationError](t, w)
	if len(errs) != 1 || errs[0].Description != "Term is too long" {
		t.Errorf("unexpected validation errors %+v", errs)
	}
}

func TestSetSearchCategoryHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/search/category/audio", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[handlers.SearchResponse](t, w)
	if resp.Category != "audio" {
		t.Errorf("expected audio, got %q", resp.Category)
	}
	if got := strings.Join(productIDs(resp), ","); got != "2" {
		t.Errorf("expected product 2, got %s", got)
	}

	doc := testutil.ParseHTML(t, []byte(env.page.String()))
	if href := doc.Find(".category-link.active").AttrOr("href", ""); href != "#audio" {
		t.Errorf("expected the audio link to be active, got %q", href)
	}

	w = env.do(t, http.MethodPut, "/api/search/category/all", nil)
	resp = decode[handlers.SearchResponse](t, w)
	if resp.Shown != 8 {
		t.Errorf("expected all products, got %d", resp.Shown)
	}
}

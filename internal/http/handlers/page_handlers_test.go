package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/dom"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/search"
	"github.com/rogerio-castellano/storefront/internal/testutil"
)

func TestPageHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>") {
		t.Errorf("expected a full document")
	}

	doc := testutil.ParseHTML(t, w.Body.Bytes())
	if got := doc.Find(".product").Length(); got != 8 {
		t.Errorf("expected 8 product cards, got %d", got)
	}
	if got := doc.Find("#contentProducts").Text(); got != "Cart is empty" {
		t.Errorf("expected the empty cart row, got %q", got)
	}
	if got := doc.Find(".search-results-counter p").Text(); got != "Showing 8 of 8 products" {
		t.Errorf("unexpected counter %q", got)
	}
}

func TestFragmentHandler_NotFound(t *testing.T) {
	page, err := dom.Parse(strings.NewReader(`<p>bare</p>`))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	cartStore := cart.New(t.Context(), catalog.New(nil), repo.NewInMemorySlotStore(), cart.WithView(page))
	srv := handlers.NewServer(page, cartStore, search.New(nil, search.WithView(page)), nil)
	r := router.NewRouter(srv, nil, nil)

	for _, target := range []string{"/fragments/cart", "/fragments/products"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404 Not Found, got %d", target, w.Code)
		}
		if got := w.Body.String(); got != "fragment not found\n" {
			t.Errorf("%s: unexpected body %q", target, got)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("expected 200 ok, got %d %q", w.Code, w.Body.String())
	}
}

func TestSwaggerDoc(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/api/cart/items/{id}") {
		t.Errorf("expected the cart item path in the API doc")
	}
}

func TestConcurrentEvents(t *testing.T) {
	env := newTestEnv(t)

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			req := httptest.NewRequest(http.MethodPost, "/api/cart/items/1", nil)
			env.router.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	resp := decode[handlers.CartResponse](t, env.do(t, http.MethodGet, "/api/cart", nil))
	if resp.Count != 20 {
		t.Errorf("expected 20 units after concurrent adds, got %d", resp.Count)
	}
}

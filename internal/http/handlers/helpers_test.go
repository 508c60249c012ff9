package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/dom"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/search"
	"github.com/rogerio-castellano/storefront/web"
)

type testEnv struct {
	router http.Handler
	page   *dom.Page
	slot   *repo.InMemorySlotStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	page, err := dom.Parse(bytes.NewReader(web.IndexHTML()))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	products, err := catalog.ScrapeDocument(page.Document())
	if err != nil {
		t.Fatalf("scrape page: %v", err)
	}

	slot := repo.NewInMemorySlotStore()
	cartStore := cart.New(t.Context(), catalog.New(products), slot,
		cart.WithView(page),
		cart.WithNotifier(notify.NewToastNotifier(page)),
	)
	filter := search.New(products, search.WithView(page))

	srv := handlers.NewServer(page, cartStore, filter, nil)
	return &testEnv{
		router: router.NewRouter(srv, nil, nil),
		page:   page,
		slot:   slot,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

package handlers

import (
	"sync"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/dom"
	"github.com/rogerio-castellano/storefront/internal/search"
	"go.uber.org/zap"
)

// Server binds page events to the cart and search controllers. Every event runs
// under one lock, so the controllers only ever see one event at a time.
type Server struct {
	mu     sync.Mutex
	page   *dom.Page
	cart   *cart.Store
	filter *search.Filter
	logger *zap.Logger
}

func NewServer(page *dom.Page, cartStore *cart.Store, filter *search.Filter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		page:   page,
		cart:   cartStore,
		filter: filter,
		logger: logger,
	}
}

// Package cart keeps the shopping cart line items, persists them to a named slot
// and keeps the rendered summary consistent with them.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// DefaultSlotKey is the slot the cart is saved under unless WithSlotKey is given.
const DefaultSlotKey = "shoppingCart"

const (
	msgItemAdded   = "Product added to cart"
	msgItemRemoved = "Product removed from cart"
	msgCartCleared = "Cart emptied"
)

// Catalog resolves product display data for new cart lines.
type Catalog interface {
	Lookup(id string) (models.Product, error)
}

// View receives the rendered cart state.
type View interface {
	RenderSummary(items []models.CartItem, total models.Money)
	RenderCount(count int)
}

// Store owns the cart line items. It is not safe for concurrent use.
type Store struct {
	items []models.CartItem
	total decimal.Decimal

	catalog  Catalog
	slot     repo.SlotStore
	slotKey  string
	unit     currency.Unit
	view     View
	notifier notify.Notifier
	logger   *zap.Logger
}

type Option func(*Store)

func WithView(v View) Option {
	return func(s *Store) { s.view = v }
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithSlotKey(key string) Option {
	return func(s *Store) { s.slotKey = key }
}

func WithCurrency(unit currency.Unit) Option {
	return func(s *Store) { s.unit = unit }
}

// New restores the cart saved in slot and renders it. Unreadable or invalid saved
// state starts an empty cart.
func New(ctx context.Context, catalog Catalog, slot repo.SlotStore, opts ...Option) *Store {
	s := &Store{
		items:    []models.CartItem{},
		catalog:  catalog,
		slot:     slot,
		slotKey:  DefaultSlotKey,
		unit:     currency.USD,
		view:     nopView{},
		notifier: notify.Nop{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = s.load(ctx)
	s.Render()
	return s
}

// AddItem adds one unit of productID. A product the catalog cannot resolve, or one
// with a negative price, is ignored.
func (s *Store) AddItem(ctx context.Context, productID string) error {
	product, err := s.catalog.Lookup(productID)
	if err != nil {
		s.logger.Debug("add to cart ignored", zap.String("product_id", productID), zap.Error(err))
		return nil
	}
	if product.Price.IsNegative() {
		s.logger.Warn("add to cart ignored, negative price", zap.String("product_id", productID), zap.Stringer("price", product.Price))
		return nil
	}

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, models.CartItem{
			ID:       productID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}

	return s.commit(ctx, notify.New(notify.KindItemAdded, msgItemAdded, productID))
}

// RemoveItem deletes the line for productID if there is one. The cart is saved,
// rendered and a notification emitted either way.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	if i := s.indexOf(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	return s.commit(ctx, notify.New(notify.KindItemRemoved, msgItemRemoved, productID))
}

// SetQuantity replaces the quantity of an existing line. Zero or less removes it.
// Unknown ids are ignored. No notification is emitted for plain quantity edits.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.items[i].Quantity = quantity
	err := s.persist(ctx)
	s.Render()
	return err
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.items = []models.CartItem{}
	return s.commit(ctx, notify.New(notify.KindCartCleared, msgCartCleared, ""))
}

// Total returns the total computed by the last render.
func (s *Store) Total() models.Money {
	return models.NewMoney(s.total, s.unit)
}

// Items returns a snapshot of the cart lines.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of units in the cart, saturating at math.MaxInt.
func (s *Store) Count() int {
	n := 0
	for _, item := range s.items {
		if item.Quantity > math.MaxInt-n {
			return math.MaxInt
		}
		n += item.Quantity
	}
	return n
}

// Render recomputes the total and writes summary and badge to the view.
func (s *Store) Render() {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	s.total = total

	s.view.RenderSummary(s.Items(), s.Total())
	s.view.RenderCount(s.Count())
}

func (s *Store) commit(ctx context.Context, n notify.Notification) error {
	err := s.persist(ctx)
	s.Render()
	if nerr := s.notifier.Notify(ctx, n); nerr != nil {
		s.logger.Warn("notification failed", zap.String("kind", string(n.Kind)), zap.Error(nerr))
	}
	return err
}

func (s *Store) indexOf(productID string) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.slot.Save(ctx, s.slotKey, string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) []models.CartItem {
	raw, err := s.slot.Load(ctx, s.slotKey)
	if errors.Is(err, repo.ErrSlotEmpty) || (err == nil && raw == "") {
		return []models.CartItem{}
	}
	if err != nil {
		s.logger.Warn("saved cart unreadable, starting empty", zap.String("slot", s.slotKey), zap.Error(err))
		return []models.CartItem{}
	}

	items, err := Decode(raw)
	if err != nil {
		s.logger.Warn("saved cart discarded, starting empty", zap.String("slot", s.slotKey), zap.Error(err))
		return []models.CartItem{}
	}
	return items
}

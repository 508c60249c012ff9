// Package search derives the visible subset of the catalog from a search term and
// a category selector, and renders it with the matches emphasized.
package search

import (
	"html/template"
	"strings"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
	"go.uber.org/zap"
)

// DefaultRevealStep is the delay added between consecutive revealed products.
const DefaultRevealStep = 100 * time.Millisecond

// View receives the rendered filter state.
type View interface {
	Prepare(total int)
	HideProduct(p models.Product)
	RevealProduct(p models.Product, delay time.Duration, name, description template.HTML)
	ShowNoResults(show bool)
	SetResultsCount(shown, total int)
	SetActiveCategory(c models.Category)
}

// Filter owns the catalog snapshot and the current search state.
// It is not safe for concurrent use.
type Filter struct {
	products []models.Product
	filtered []models.Product
	term     string
	category models.Category

	view        View
	step        time.Duration
	highlighter *Highlighter
	logger      *zap.Logger
}

type Option func(*Filter)

func WithView(v View) Option {
	return func(f *Filter) { f.view = v }
}

func WithLogger(l *zap.Logger) Option {
	return func(f *Filter) { f.logger = l }
}

func WithRevealStep(d time.Duration) Option {
	return func(f *Filter) { f.step = d }
}

// New captures products. Every product starts visible with no term and category "all".
func New(products []models.Product, opts ...Option) *Filter {
	captured := make([]models.Product, len(products))
	copy(captured, products)

	f := &Filter{
		products:    captured,
		category:    models.CategoryAll,
		view:        nopView{},
		step:        DefaultRevealStep,
		highlighter: NewHighlighter(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.filtered = f.Products()

	f.view.Prepare(len(f.products))
	f.view.SetResultsCount(len(f.filtered), len(f.products))
	f.view.SetActiveCategory(f.category)
	return f
}

// SetSearchTerm stores the lowercased term and reapplies the filter.
func (f *Filter) SetSearchTerm(term string) {
	f.term = strings.ToLower(term)
	f.Apply()
}

// SetCategory stores the category selector and reapplies the filter. A key outside
// the known categories is kept and matches no product.
func (f *Filter) SetCategory(key string) {
	f.category = models.ParseCategory(key)
	if !f.category.Valid() {
		f.logger.Info("unknown category selected", zap.String("category", key))
	}
	f.Apply()
}

// Apply recomputes the filtered products, keeping catalog order, and renders them.
func (f *Filter) Apply() {
	m := f.highlighter.Matcher(f.term)
	filtered := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		if f.matches(m, p) {
			filtered = append(filtered, p)
		}
	}
	f.filtered = filtered

	f.logger.Debug("filter applied",
		zap.String("term", f.term),
		zap.String("category", string(f.category)),
		zap.Int("shown", len(f.filtered)),
		zap.Int("total", len(f.products)),
	)
	f.render(m)
}

func (f *Filter) matches(m Matcher, p models.Product) bool {
	matchesSearch := m.Match(p.Name) || m.Match(p.Description)

	matchesCategory := f.category == models.CategoryAll || p.Category == f.category

	return matchesSearch && matchesCategory
}

func (f *Filter) render(m Matcher) {
	for _, p := range f.products {
		f.view.HideProduct(p)
	}

	if len(f.filtered) == 0 {
		f.view.ShowNoResults(true)
	} else {
		f.view.ShowNoResults(false)

		for i, p := range f.filtered {
			f.view.RevealProduct(p, time.Duration(i)*f.step, m.Highlight(p.Name), m.Highlight(p.Description))
		}
	}

	f.view.SetResultsCount(len(f.filtered), len(f.products))
	f.view.SetActiveCategory(f.category)
}

// FilteredProducts returns the products matching the current state, in catalog order.
func (f *Filter) FilteredProducts() []models.Product {
	out := make([]models.Product, len(f.filtered))
	copy(out, f.filtered)
	return out
}

// Products returns the whole catalog snapshot.
func (f *Filter) Products() []models.Product {
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out
}

func (f *Filter) CurrentCategory() models.Category {
	return f.category
}

func (f *Filter) SearchTerm() string {
	return f.term
}

type nopView struct{}

func (nopView) Prepare(int)                                                               {}
func (nopView) HideProduct(models.Product)                                                {}
func (nopView) RevealProduct(models.Product, time.Duration, template.HTML, template.HTML) {}
func (nopView) ShowNoResults(bool)                                                        {}
func (nopView) SetResultsCount(int, int)                                                  {}
func (nopView) SetActiveCategory(models.Category)                                         {}

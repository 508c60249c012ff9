// Package dom holds the storefront page as an in-memory document tree and writes
// cart and search state into its named insertion points. Missing insertion points
// are skipped silently.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/currency"
)

// Insertion points the page is expected to provide.
const (
	CartRowsSelector      = "#contentProducts"
	CartTotalSelector     = "#total"
	CartCountSelector     = "#cartCount"
	CartSelector          = ".cart"
	ProductsSelector      = ".products"
	ProductsGridSelector  = ".products-grid"
	NoResultsSelector     = ".no-results"
	ResultsCountSelector  = "#resultsCount"
	ResultsTotalSelector  = "#resultsTotal"
	CategoryLinkSelector  = ".category-link"
	NotificationsSelector = "#notifications"
)

// maxToasts bounds how many notifications are kept in the page.
const maxToasts = 5

// Page is the storefront document. It is not safe for concurrent use.
type Page struct {
	doc  *goquery.Document
	unit currency.Unit
}

type Option func(*Page)

// WithCurrency sets the currency used for formatted prices.
func WithCurrency(unit currency.Unit) Option {
	return func(p *Page) { p.unit = unit }
}

// Parse reads an HTML document.
func Parse(r io.Reader, opts ...Option) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	p := &Page{doc: doc, unit: currency.USD}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Document exposes the underlying tree, e.g. for scraping the catalog.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Render writes the whole document.
func (p *Page) Render(w io.Writer) error {
	if len(p.doc.Nodes) == 0 {
		return nil
	}
	return html.Render(w, p.doc.Nodes[0])
}

// String renders the whole document to a string.
func (p *Page) String() string {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Fragment returns the outer HTML of the first element matching selector.
func (p *Page) Fragment(selector string) (string, bool) {
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", false
	}
	return out, true
}

func setStyle(sel *goquery.Selection, decls ...string) {
	sel.SetAttr("style", strings.Join(decls, "; "))
}

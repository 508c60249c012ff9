package dom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/dom"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/testutil"
	"github.com/rogerio-castellano/storefront/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedPage(t *testing.T) *dom.Page {
	t.Helper()
	page, err := dom.Parse(bytes.NewReader(web.IndexHTML()))
	require.NoError(t, err)
	return page
}

func bareFragment(t *testing.T) *dom.Page {
	t.Helper()
	page, err := dom.Parse(strings.NewReader(`<p>nothing to see</p>`))
	require.NoError(t, err)
	return page
}

// reparse renders the page and parses the output again, so assertions see what a
// client would receive.
func reparse(t *testing.T, page *dom.Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	return testutil.ParseHTML(t, buf.Bytes())
}

func scrape(t *testing.T, page *dom.Page) []models.Product {
	t.Helper()
	products, err := catalog.ScrapeDocument(page.Document())
	require.NoError(t, err)
	return products
}

func TestFragment(t *testing.T) {
	page := embeddedPage(t)

	cart, ok := page.Fragment(dom.CartSelector)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(cart, `<div class="cart"`))
	assert.Contains(t, cart, `id="contentProducts"`)

	_, ok = page.Fragment(".does-not-exist")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	page := embeddedPage(t)
	out := page.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<span id="cartCount">0</span>`)
}

package dom

import (
	"html/template"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/models"
)

const resultsCounterHTML = `<div class="search-results-counter">` +
	`<p>Showing <span id="resultsCount">0</span> of <span id="resultsTotal">0</span> products</p>` +
	`</div>`

const noResultsHTML = `<div class="no-results" style="display: none">` +
	`<div class="no-results-content">` +
	`<h3>No products found</h3>` +
	`<p>Try other search terms or pick another category</p>` +
	`</div></div>`

// Prepare adds the results counter and the no-results panel to the products
// section unless the page already has them.
func (p *Page) Prepare(total int) {
	section := p.doc.Find(ProductsSelector).First()
	if section.Length() == 0 {
		return
	}

	if p.doc.Find(ResultsCountSelector).Length() == 0 {
		if heading := section.Find("h2").First(); heading.Length() > 0 {
			heading.AfterHtml(resultsCounterHTML)
		} else {
			section.PrependHtml(resultsCounterHTML)
		}
	}
	if p.doc.Find(NoResultsSelector).Length() == 0 {
		section.AppendHtml(noResultsHTML)
	}
	p.SetResultsCount(total, total)
}

// HideProduct hides a product card.
func (p *Page) HideProduct(prod models.Product) {
	el := p.productElement(prod)
	setStyle(el, "display: none", "opacity: 0")
	el.SetAttr("data-visible", "false")
	el.RemoveAttr("data-reveal-delay")
}

// RevealProduct shows a product card with its name and description replaced by the
// given markup. delay is only exposed to the client as a reveal hint.
func (p *Page) RevealProduct(prod models.Product, delay time.Duration, name, description template.HTML) {
	el := p.productElement(prod)
	setStyle(el, "display: flex", "opacity: 1")
	el.SetAttr("data-visible", "true")
	el.SetAttr("data-reveal-delay", strconv.FormatInt(delay.Milliseconds(), 10))
	el.Find(catalog.NameSelector).First().SetHtml(string(name))
	el.Find(catalog.DescriptionSelector).First().SetHtml(string(description))
}

// ShowNoResults toggles the no-results panel.
func (p *Page) ShowNoResults(show bool) {
	panel := p.doc.Find(NoResultsSelector)
	if show {
		setStyle(panel, "display: block")
	} else {
		setStyle(panel, "display: none")
	}
}

// SetResultsCount updates the "Showing N of M products" counter.
func (p *Page) SetResultsCount(shown, total int) {
	p.doc.Find(ResultsCountSelector).SetText(strconv.Itoa(shown))
	p.doc.Find(ResultsTotalSelector).SetText(strconv.Itoa(total))
}

// SetActiveCategory marks the category link whose href is "#<category>".
func (p *Page) SetActiveCategory(c models.Category) {
	links := p.doc.Find(CategoryLinkSelector)
	links.RemoveClass("active")
	links.FilterFunction(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		return ok && href != "" && models.ParseCategory(href) == c
	}).AddClass("active")
}

// productElement prefers the node captured with the product and falls back to
// looking the card up by its add button id.
func (p *Page) productElement(prod models.Product) *goquery.Selection {
	if prod.Element != nil && prod.Element.Length() > 0 {
		return prod.Element
	}
	return p.doc.Find(catalog.ProductSelector).FilterFunction(func(_ int, card *goquery.Selection) bool {
		id, _ := card.Find(catalog.AddButtonSelector).First().Attr("data-id")
		return id == prod.ID
	})
}

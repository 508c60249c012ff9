package search_test

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type revealed struct {
	id          string
	delay       time.Duration
	name        template.HTML
	description template.HTML
}

type recordingView struct {
	prepared  int
	hidden    map[string]bool
	revealed  []revealed
	noResults bool
	shown     int
	total     int
	active    models.Category
}

func newRecordingView() *recordingView {
	return &recordingView{hidden: map[string]bool{}}
}

func (v *recordingView) Prepare(total int) { v.prepared = total }

func (v *recordingView) HideProduct(p models.Product) { v.hidden[p.ID] = true }

func (v *recordingView) RevealProduct(p models.Product, delay time.Duration, name, description template.HTML) {
	v.hidden[p.ID] = false
	v.revealed = append(v.revealed, revealed{id: p.ID, delay: delay, name: name, description: description})
}

func (v *recordingView) ShowNoResults(show bool) { v.noResults = show }

func (v *recordingView) SetResultsCount(shown, total int) { v.shown, v.total = shown, total }

func (v *recordingView) SetActiveCategory(c models.Category) { v.active = c }

func (v *recordingView) reset() { v.revealed = nil }

func testProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Mouse", Description: "Silent click", Category: models.CategoryAccessories},
		{ID: "2", Name: "Gaming Mouse Pad", Description: "XL surface", Category: models.CategoryAccessories},
		{ID: "3", Name: "Bluetooth Headphones", Description: "Noise cancelling", Category: models.CategoryAudio},
		{ID: "4", Name: "Game Controller", Description: "Wireless pad for PC", Category: models.CategoryGaming},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view))

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(f.FilteredProducts()))
	assert.Equal(t, models.CategoryAll, f.CurrentCategory())
	assert.Empty(t, f.SearchTerm())

	assert.Equal(t, 4, view.prepared)
	assert.Equal(t, 4, view.shown)
	assert.Equal(t, 4, view.total)
	assert.Equal(t, models.CategoryAll, view.active)
	assert.Empty(t, view.revealed, "construction does not reveal anything")
}

func TestApply_EmptyTermAndAllReturnsCatalogOrder(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view))

	f.SetSearchTerm("mouse")
	f.SetSearchTerm("")
	f.SetCategory("all")

	if diff := cmp.Diff(ids(testProducts()), ids(f.FilteredProducts())); diff != "" {
		t.Errorf("filtered products mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, view.noResults)
}

func TestSetSearchTerm(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view), search.WithRevealStep(50*time.Millisecond))

	f.SetSearchTerm("WIRELESS")

	assert.Equal(t, "wireless", f.SearchTerm())
	assert.Equal(t, []string{"1", "4"}, ids(f.FilteredProducts()))
	assert.Equal(t, 2, view.shown)
	assert.Equal(t, 4, view.total)
	assert.True(t, view.hidden["2"])
	assert.True(t, view.hidden["3"])
	assert.False(t, view.hidden["1"])

	require.Len(t, view.revealed, 2)
	assert.Equal(t, time.Duration(0), view.revealed[0].delay)
	assert.Equal(t, 50*time.Millisecond, view.revealed[1].delay)
	assert.Equal(t, template.HTML(`<mark class="search-highlight">Wireless</mark> Mouse`), view.revealed[0].name)
	assert.Equal(t, template.HTML(`<mark class="search-highlight">Wireless</mark> pad for PC`), view.revealed[1].description)
	assert.Equal(t, template.HTML("Game Controller"), view.revealed[1].name)
}

func TestSetSearchTerm_ClearingRemovesEmphasis(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view))

	f.SetSearchTerm("mouse")
	view.reset()
	f.SetSearchTerm("")

	require.Len(t, view.revealed, 4)
	for _, r := range view.revealed {
		assert.NotContains(t, string(r.name), "<mark")
	}
	assert.Equal(t, template.HTML("Wireless Mouse"), view.revealed[0].name)
}

func TestSetSearchTerm_NoResults(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view))

	f.SetSearchTerm("toaster")

	assert.Empty(t, f.FilteredProducts())
	assert.True(t, view.noResults)
	assert.Zero(t, view.shown)
	assert.Empty(t, view.revealed)
	for _, p := range testProducts() {
		assert.True(t, view.hidden[p.ID], "product %s should be hidden", p.ID)
	}
}

func TestSetSearchTerm_MetacharactersMatchLiterally(t *testing.T) {
	products := append(testProducts(), models.Product{ID: "5", Name: "C++ Primer", Category: models.CategoryElectronics})
	f := search.New(products)

	f.SetSearchTerm("c++")
	assert.Equal(t, []string{"5"}, ids(f.FilteredProducts()))

	f.SetSearchTerm("(")
	assert.Empty(t, f.FilteredProducts())
}

func TestSetCategory(t *testing.T) {
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view))

	f.SetCategory("#accessories")
	assert.Equal(t, models.CategoryAccessories, f.CurrentCategory())
	assert.Equal(t, []string{"1", "2"}, ids(f.FilteredProducts()))
	assert.Equal(t, models.CategoryAccessories, view.active)

	f.SetSearchTerm("pad")
	assert.Equal(t, []string{"2"}, ids(f.FilteredProducts()), "term and category combine")

	f.SetCategory("")
	assert.Equal(t, models.CategoryAll, f.CurrentCategory())
	assert.Equal(t, []string{"2", "4"}, ids(f.FilteredProducts()))
}

func TestSetCategory_UnknownMatchesNothing(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	view := newRecordingView()
	f := search.New(testProducts(), search.WithView(view), search.WithLogger(zap.New(core)))

	f.SetCategory("#audio")
	assert.Zero(t, logs.FilterMessage("unknown category selected").Len())

	f.SetCategory("toys")

	assert.Equal(t, models.Category("toys"), f.CurrentCategory())
	assert.Empty(t, f.FilteredProducts())
	assert.True(t, view.noResults)

	entries := logs.FilterMessage("unknown category selected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "toys", entries[0].ContextMap()["category"])
}

func TestSetSearchTerm_FilterAgreesWithHighlight(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "\u0130stanbul Lamp", Description: "Brass", Category: models.CategoryElectronics},
		{ID: "2", Name: "\u212Aelvin Thermometer", Description: "Lab grade", Category: models.CategoryElectronics},
		{ID: "3", Name: "Desk Clock", Description: "Quartz", Category: models.CategoryElectronics},
	}

	for _, term := range []string{"i\u0307", "k", "K", "\u212A"} {
		t.Run(term, func(t *testing.T) {
			view := newRecordingView()
			f := search.New(products, search.WithView(view))
			view.reset()

			f.SetSearchTerm(term)

			require.Len(t, view.revealed, len(f.FilteredProducts()))
			for _, r := range view.revealed {
				assert.True(t,
					strings.Contains(string(r.name), "<mark") || strings.Contains(string(r.description), "<mark"),
					"product %s is shown without emphasis", r.id)
			}
		})
	}

	f := search.New(products)
	f.SetSearchTerm("k")
	assert.Equal(t, []string{"2", "3"}, ids(f.FilteredProducts()))
}

func TestAccessorsReturnCopies(t *testing.T) {
	f := search.New(testProducts())

	filtered := f.FilteredProducts()
	filtered[0].ID = "changed"
	all := f.Products()
	all[1].ID = "changed"

	assert.Equal(t, "1", f.FilteredProducts()[0].ID)
	assert.Equal(t, "2", f.Products()[1].ID)
}

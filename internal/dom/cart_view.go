package dom

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var cartRowTmpl = template.Must(template.New("cart_row").Parse(
	`<tr data-id="{{.ID}}">` +
		`<td><img src="{{.Image}}" alt="{{.Name}}" class="cart-thumb"></td>` +
		`<td>{{.Name}}</td>` +
		`<td>{{.Price}}</td>` +
		`<td><input type="number" min="1" value="{{.Quantity}}" class="cart-qty" data-action="set-quantity" data-id="{{.ID}}"></td>` +
		`<td><button type="button" class="cart-remove" data-action="remove-item" data-id="{{.ID}}">X</button></td>` +
		`</tr>`))

const emptyCartRow = `<tr class="cart-empty"><td colspan="5">Cart is empty</td></tr>`

type cartRow struct {
	ID       string
	Name     string
	Image    string
	Price    string
	Quantity int
}

// RenderSummary replaces the cart table rows and the total. Both insertion points
// must exist and every row must render, otherwise nothing is written.
func (p *Page) RenderSummary(items []models.CartItem, total models.Money) {
	rows := p.doc.Find(CartRowsSelector)
	totalEl := p.doc.Find(CartTotalSelector)
	if rows.Length() == 0 || totalEl.Length() == 0 {
		return
	}

	if len(items) == 0 {
		rows.SetHtml(emptyCartRow)
		totalEl.SetText(models.NewMoney(decimal.Zero, total.Currency).String())
		return
	}

	var buf bytes.Buffer
	for _, item := range items {
		err := cartRowTmpl.Execute(&buf, cartRow{
			ID:       item.ID,
			Name:     item.Name,
			Image:    item.Image,
			Price:    models.FormatPrice(item.Price, p.unit),
			Quantity: item.Quantity,
		})
		if err != nil {
			return
		}
	}
	rows.SetHtml(buf.String())
	totalEl.SetText(total.String())
}

// RenderCount writes the number of units into the cart badge.
func (p *Page) RenderCount(count int) {
	badge := p.doc.Find(CartCountSelector)
	badge.SetText(strconv.Itoa(count))
	if count > 0 {
		badge.SetAttr("data-pulse", "")
	} else {
		badge.RemoveAttr("data-pulse")
	}
}

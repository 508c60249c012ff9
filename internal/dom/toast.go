package dom

import (
	"bytes"
	"html/template"
)

var toastTmpl = template.Must(template.New("toast").Parse(
	`<div class="toast" id="toast-{{.ID}}" role="status" data-dismiss-after="3000">{{.Message}}</div>`))

// Toast appends a notification to the notifications region, keeping only the
// most recent ones.
func (p *Page) Toast(id, message string) {
	region := p.doc.Find(NotificationsSelector).First()
	if region.Length() == 0 {
		return
	}

	var buf bytes.Buffer
	if err := toastTmpl.Execute(&buf, struct{ ID, Message string }{id, message}); err != nil {
		return
	}
	region.AppendHtml(buf.String())

	toasts := region.Children().Filter(".toast")
	if extra := toasts.Length() - maxToasts; extra > 0 {
		toasts.Slice(0, extra).Remove()
	}
}

package search

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	markOpen  = `<mark class="search-highlight">`
	markClose = `</mark>`
)

// Highlighter wraps search matches in emphasis markup.
type Highlighter struct {
	policy *bluemonday.Policy
}

// NewHighlighter builds a highlighter whose output may only contain the
// search-highlight mark element.
func NewHighlighter() *Highlighter {
	p := bluemonday.NewPolicy()
	p.AllowElements("mark")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^search-highlight$`)).OnElements("mark")
	return &Highlighter{policy: p}
}

// Matcher is a highlighter bound to one search term.
type Matcher struct {
	re     *regexp.Regexp
	policy *bluemonday.Policy
}

// Matcher compiles term for case-insensitive literal matching. An empty term yields
// a matcher that only escapes text.
func (h *Highlighter) Matcher(term string) Matcher {
	if term == "" {
		return Matcher{policy: h.policy}
	}
	return Matcher{
		re:     regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
		policy: h.policy,
	}
}

// Match reports whether text contains the term. An empty term matches everything.
func (m Matcher) Match(text string) bool {
	return m.re == nil || m.re.MatchString(text)
}

// Highlight returns text as safe HTML with every match wrapped in a mark element.
func (m Matcher) Highlight(text string) template.HTML {
	if m.re == nil {
		return template.HTML(html.EscapeString(text))
	}

	matches := m.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return template.HTML(html.EscapeString(text))
	}

	var sb strings.Builder
	last := 0
	for _, loc := range matches {
		sb.WriteString(html.EscapeString(text[last:loc[0]]))
		sb.WriteString(markOpen)
		sb.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		sb.WriteString(markClose)
		last = loc[1]
	}
	sb.WriteString(html.EscapeString(text[last:]))

	return template.HTML(m.policy.Sanitize(sb.String()))
}

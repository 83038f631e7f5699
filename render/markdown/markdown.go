// Package markdown provides a phraze.Renderer backed by goldmark with
// bluemonday output sanitization.
package markdown

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	phraze "github.com/reoring/phraze"
)

// Renderer converts Markdown phrase text into sanitized HTML fragments.
// The pipeline is render then sanitize then wrap: raw HTML emitted by the
// Markdown conversion never reaches a SafeMarkup unsanitized.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer using goldmark defaults and the bluemonday UGC policy.
func New() *Renderer {
	return &Renderer{md: goldmark.New(), policy: bluemonday.UGCPolicy()}
}

// NewWithPolicy returns a Renderer with a custom sanitization policy.
// A nil policy falls back to the UGC policy.
func NewWithPolicy(p *bluemonday.Policy) *Renderer {
	if p == nil {
		p = bluemonday.UGCPolicy()
	}
	return &Renderer{md: goldmark.New(), policy: p}
}

// Render implements phraze.Renderer. Conversion failures degrade to escaped
// plain text; a broken phrase renders ugly, never unsafe.
func (r *Renderer) Render(raw string) phraze.SafeMarkup {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(raw), &buf); err != nil {
		return phraze.MarkupFromSanitized(html.EscapeString(raw))
	}
	return phraze.MarkupFromSanitized(r.policy.Sanitize(buf.String()))
}

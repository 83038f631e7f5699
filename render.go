package phraze

import (
	"html"
	"sync"
)

// SafeMarkup is an opaque renderable fragment. It can only be minted from
// sanitized output, so holding one is proof the content is safe to inject
// into a display surface.
type SafeMarkup struct {
	html string
}

// MarkupFromSanitized wraps already-sanitized markup as a SafeMarkup.
// Renderer implementations call this as their last step; the caller asserts
// the input went through sanitization.
func MarkupFromSanitized(markup string) SafeMarkup { return SafeMarkup{html: markup} }

// HTML returns the sanitized markup.
func (m SafeMarkup) HTML() string { return m.html }

func (m SafeMarkup) String() string { return m.html }

// Renderer converts raw phrase text (already expanded) into a sanitized
// fragment. Implementations must never return unsanitized markup; on internal
// failure they degrade to escaped plain text rather than erroring, since a
// broken render must not take the consuming UI down with it.
type Renderer interface {
	Render(raw string) SafeMarkup
}

var (
	rendererMu  sync.RWMutex
	currentRend Renderer = escapeRenderer{}
)

// SetRenderer replaces the global Renderer; nil values are ignored.
func SetRenderer(r Renderer) {
	if r == nil {
		return
	}
	rendererMu.Lock()
	currentRend = r
	rendererMu.Unlock()
}

// UseDefaultRenderer restores the escape-only built-in renderer.
func UseDefaultRenderer() {
	rendererMu.Lock()
	currentRend = escapeRenderer{}
	rendererMu.Unlock()
}

func currentRenderer() Renderer {
	rendererMu.RLock()
	r := currentRend
	rendererMu.RUnlock()
	return r
}

// escapeRenderer is the zero-dependency default: it performs no formatting
// and HTML-escapes everything.
type escapeRenderer struct{}

func (escapeRenderer) Render(raw string) SafeMarkup {
	return SafeMarkup{html: html.EscapeString(raw)}
}

package phraze

import (
	"fmt"
	"sync/atomic"
)

// activePair is the unit of publication: Locale and Catalog always change together.
type activePair[T any] struct {
	loc Locale
	cat *T
}

// Active is the session-scoped current-locale state. The (Locale, Catalog)
// pair is held behind a single atomic pointer, so readers always observe a
// coherent pair and concurrent Switch calls resolve as last-write-wins.
// The zero value is not usable; create Active with NewActive. The bundle must
// be fully populated before NewActive and not mutated after.
type Active[T any] struct {
	bundle *Bundle[T]
	cur    atomic.Pointer[activePair[T]]
}

// NewActive creates Active state positioned at the bundle's default locale.
// The default locale must have a registered catalog.
func NewActive[T any](b *Bundle[T]) (*Active[T], error) {
	cat, ok := b.Catalog(b.Default())
	if !ok {
		return nil, AppendIssues(nil, Issue{Code: CodeUnknownLocale, Message: fmt.Sprintf("default locale %s has no catalog", b.Default())})
	}
	a := &Active[T]{bundle: b}
	a.cur.Store(&activePair[T]{loc: b.Default(), cat: cat})
	return a, nil
}

// Current returns the active locale and its catalog as one coherent pair,
// read from a single publication.
func (a *Active[T]) Current() (Locale, *T) {
	p := a.cur.Load()
	return p.loc, p.cat
}

// Locale returns the currently active locale.
func (a *Active[T]) Locale() Locale { return a.cur.Load().loc }

// Catalog returns the catalog of the currently active locale.
func (a *Active[T]) Catalog() *T { return a.cur.Load().cat }

// Switch makes loc the active locale. Unregistered locales are rejected and
// leave the current pair untouched.
func (a *Active[T]) Switch(loc Locale) error {
	cat, ok := a.bundle.Catalog(loc)
	if !ok {
		return AppendIssues(nil, Issue{Code: CodeUnknownLocale, Message: fmt.Sprintf("locale %s is not registered", loc)})
	}
	a.cur.Store(&activePair[T]{loc: loc, cat: cat})
	return nil
}

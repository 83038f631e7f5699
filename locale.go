package phraze

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale identifies one supported language. It wraps a BCP 47 tag.
type Locale struct {
	tag language.Tag
}

// ParseLocale parses a BCP 47 tag such as "en" or "fr-CA".
func ParseLocale(s string) (Locale, error) {
	t, err := language.Parse(s)
	if err != nil {
		return Locale{}, AppendIssues(nil, Issue{Code: CodeUnknownLocale, Message: fmt.Sprintf("invalid locale %q", s), Cause: err})
	}
	return Locale{tag: t}, nil
}

// MustParseLocale is like ParseLocale but panics on error. Intended for
// declaring the supported set as package-level values.
func MustParseLocale(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag { return l.tag }

func (l Locale) String() string { return l.tag.String() }

// Bundle holds one catalog of type T per supported Locale. It is populated at
// startup via Register/Load and treated as read-only afterwards; catalogs are
// never replaced, so a locale always routes to the same catalog instance.
type Bundle[T any] struct {
	def      Locale
	catalogs map[language.Tag]*T
	ordered  []language.Tag // matcher order; default first
	matcher  language.Matcher
}

// NewBundle creates an empty bundle whose fallback target is def.
func NewBundle[T any](def Locale) *Bundle[T] {
	return &Bundle[T]{def: def, catalogs: make(map[language.Tag]*T)}
}

// Default returns the bundle's default locale.
func (b *Bundle[T]) Default() Locale { return b.def }

// Locales returns the registered locales in matcher order (default first).
func (b *Bundle[T]) Locales() []Locale {
	out := make([]Locale, len(b.ordered))
	for i, t := range b.ordered {
		out[i] = Locale{tag: t}
	}
	return out
}

// Register adds the catalog for loc. Registering a locale twice is an error:
// catalogs are immutable and must not be swapped out from under readers.
func (b *Bundle[T]) Register(loc Locale, c *T) error {
	if c == nil {
		return singleIssue(CodeInvalidType, "nil catalog")
	}
	if _, exists := b.catalogs[loc.tag]; exists {
		return AppendIssues(nil, Issue{Code: CodeDuplicateLocale, Message: fmt.Sprintf("locale %s already registered", loc)})
	}
	b.catalogs[loc.tag] = c
	b.rebuildMatcher()
	return nil
}

// Load deserializes src into a new catalog and registers it for loc.
func (b *Bundle[T]) Load(loc Locale, src Source, opts ...LoadOpt) (*T, error) {
	c, err := Load[T](src, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Register(loc, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Catalog returns the catalog registered for exactly loc.
func (b *Bundle[T]) Catalog(loc Locale) (*T, bool) {
	c, ok := b.catalogs[loc.tag]
	return c, ok
}

// Match returns the closest supported locale for loc and its catalog, falling
// back to the default. With no registrations it returns a zero Locale and nil.
func (b *Bundle[T]) Match(loc Locale) (Locale, *T) {
	if b.matcher == nil {
		return Locale{}, nil
	}
	_, idx, _ := b.matcher.Match(loc.tag)
	t := b.ordered[idx]
	return Locale{tag: t}, b.catalogs[t]
}

func (b *Bundle[T]) rebuildMatcher() {
	ordered := make([]language.Tag, 0, len(b.catalogs))
	if _, ok := b.catalogs[b.def.tag]; ok {
		ordered = append(ordered, b.def.tag)
	}
	for _, t := range b.ordered {
		if t != b.def.tag {
			ordered = append(ordered, t)
		}
	}
	// append the newly registered tag, which is not in b.ordered yet
	for t := range b.catalogs {
		found := false
		for _, o := range ordered {
			if o == t {
				found = true
				break
			}
		}
		if !found {
			ordered = append(ordered, t)
		}
	}
	b.ordered = ordered
	b.matcher = language.NewMatcher(ordered)
}

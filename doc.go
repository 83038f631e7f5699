package phraze

// Package phraze provides:
//
// - Type-safe phrases via Simple[S]/Processed[S] (kind and substitution shape live only in the type system)
// - Typed catalog trees loaded fail-fast from JSON/YAML sources (Load/LoadWithReport)
// - Compile-time translation keys as accessor functions (Translate/Render)
// - Locale bundles with matcher-based fallback and atomically switchable active state
//
// Design policy:
// - Keep only public APIs in the root package; renderers with heavy deps live under render/.
// - A Processed phrase can only leave the library as SafeMarkup, which is minted after sanitization.
// - Contract violations (wrong kind, wrong shape, unknown field) fail the build, not the program.
//
// Typical usage:
//
//	cat, err := phraze.Load[Catalog](phraze.FileSource("locales/en.json"))
//	msg := phraze.Translate(cat, func(c *Catalog) phraze.Simple[Greet] { return c.Greeting }, Greet{Name: "World"})
//	frag := phraze.Render(cat, func(c *Catalog) phraze.Processed[phraze.NoSubs] { return c.About }, phraze.NoSubs{})

package phraze

// Translate selects a simple phrase from the catalog via sel and expands its
// placeholders with subs. The accessor fixes both the phrase kind and the
// substitution shape S at compile time: passing a Processed accessor or a
// value of the wrong shape does not type-check.
func Translate[T any, S any](catalog *T, sel func(*T) Simple[S], subs S) string {
	return Expand(sel(catalog).Text(), subs)
}

// Render selects a processed phrase, expands its placeholders, and runs the
// current Renderer over the result. The returned fragment is sanitized before
// it exists; callers hand it to the presentation layer verbatim.
func Render[T any, S any](catalog *T, sel func(*T) Processed[S], subs S) SafeMarkup {
	return currentRenderer().Render(Expand(sel(catalog).RenderableText(), subs))
}

package phraze

import "reflect"

// NoSubs is the unit substitution shape for phrases whose text contains no
// placeholders. Expanding with NoSubs is the identity.
type NoSubs struct{}

// Simple is a translatable phrase rendered as plain text. S declares the
// substitution shape required to expand it; the shape exists only in the type
// system and is never stored. At runtime a Simple is just its raw text.
// S should be a struct naming the placeholders, or NoSubs; other shapes
// compile but bind no placeholders (see Expand).
type Simple[S any] struct {
	raw string
}

// NewSimple wraps raw phrase text as a Simple phrase of shape S.
func NewSimple[S any](raw string) Simple[S] { return Simple[S]{raw: raw} }

// Text returns the raw phrase text prior to substitution expansion.
func (p Simple[S]) Text() string { return p.raw }

// Processed is a translatable phrase whose text requires a formatting pass
// (for example Markdown) before display. It carries the same runtime payload
// as Simple but is a distinct type: there is no conversion between the two
// kinds, and no operation changes S.
type Processed[S any] struct {
	raw string
}

// NewProcessed wraps raw phrase text as a Processed phrase of shape S.
func NewProcessed[S any](raw string) Processed[S] { return Processed[S]{raw: raw} }

// RenderableText returns the raw phrase text prior to expansion and rendering.
func (p Processed[S]) RenderableText() string { return p.raw }

// phraseLeaf is the internal binding surface used by Load to populate catalog
// fields and to recover the declared substitution shape for auditing.
type phraseLeaf interface {
	setRaw(string)
	shape() reflect.Type
}

func (p *Simple[S]) setRaw(raw string) { p.raw = raw }

func (p *Simple[S]) shape() reflect.Type { return reflect.TypeOf((*S)(nil)).Elem() }

func (p *Processed[S]) setRaw(raw string) { p.raw = raw }

func (p *Processed[S]) shape() reflect.Type { return reflect.TypeOf((*S)(nil)).Elem() }

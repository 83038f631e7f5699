package phraze_test

import (
	"strings"
	"testing"

	phraze "github.com/reoring/phraze"
)

func greeting(c *demoCatalog) phraze.Simple[greetSubs] { return c.Greeting }

func farewell(c *demoCatalog) phraze.Simple[phraze.NoSubs] { return c.Farewell }

func about(c *demoCatalog) phraze.Processed[phraze.NoSubs] { return c.About }

func TestTranslate_SubstitutesNamedPlaceholder(t *testing.T) {
	c := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	if got := phraze.Translate(c, greeting, greetSubs{Name: "World"}); got != "Hello, World!" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslate_IsDeterministic(t *testing.T) {
	c := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	a := phraze.Translate(c, greeting, greetSubs{Name: "World"})
	b := phraze.Translate(c, greeting, greetSubs{Name: "World"})
	if a != b {
		t.Fatalf("non-deterministic: %q vs %q", a, b)
	}
}

func TestTranslate_NoSubsIsIdentity(t *testing.T) {
	c := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	if got := phraze.Translate(c, farewell, phraze.NoSubs{}); got != "Goodbye." {
		t.Fatalf("got %q", got)
	}
}

func TestRender_DefaultRendererEscapes(t *testing.T) {
	src := phraze.JSONBytes([]byte(`{
		"greeting": "Hello, {name}!",
		"farewell": "Goodbye.",
		"about": "<script>alert(1)</script>",
		"menu": {"title": "Menu"}
	}`))
	c := mustLoadDemo(t, src)
	frag := phraze.Render(c, about, phraze.NoSubs{})
	if strings.Contains(frag.HTML(), "<script") {
		t.Fatalf("unsanitized script in fragment: %q", frag.HTML())
	}
	if !strings.Contains(frag.HTML(), "&lt;script&gt;") {
		t.Fatalf("expected escaped text, got %q", frag.HTML())
	}
}

func TestRender_CustomRendererReceivesExpandedText(t *testing.T) {
	c := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	var seen string
	phraze.SetRenderer(renderFunc(func(raw string) phraze.SafeMarkup {
		seen = raw
		return phraze.MarkupFromSanitized(raw)
	}))
	defer phraze.UseDefaultRenderer()

	phraze.Render(c, about, phraze.NoSubs{})
	if seen != "**bold** talk" {
		t.Fatalf("renderer saw %q", seen)
	}
}

type renderFunc func(string) phraze.SafeMarkup

func (f renderFunc) Render(raw string) phraze.SafeMarkup { return f(raw) }

package phraze_test

import (
	"testing"

	phraze "github.com/reoring/phraze"
)

type greetSubs struct {
	Name string `json:"name"`
}

type menuGroup struct {
	Title phraze.Simple[phraze.NoSubs] `json:"title"`
}

type demoCatalog struct {
	Greeting phraze.Simple[greetSubs]        `json:"greeting"`
	Farewell phraze.Simple[phraze.NoSubs]    `json:"farewell"`
	About    phraze.Processed[phraze.NoSubs] `json:"about"`
	Menu     menuGroup                       `json:"menu"`
}

const enJSON = `{
	"greeting": "Hello, {name}!",
	"farewell": "Goodbye.",
	"about": "**bold** talk",
	"menu": {"title": "Menu"}
}`

const frJSON = `{
	"greeting": "Bonjour, {name} !",
	"farewell": "Au revoir.",
	"about": "exposé en **gras**",
	"menu": {"title": "Menu"}
}`

func mustLoadDemo(t *testing.T, src phraze.Source) *demoCatalog {
	t.Helper()
	c, err := phraze.Load[demoCatalog](src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestLoad_PopulatesTypedTree(t *testing.T) {
	c := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	if got := c.Greeting.Text(); got != "Hello, {name}!" {
		t.Fatalf("greeting raw = %q", got)
	}
	if got := c.About.RenderableText(); got != "**bold** talk" {
		t.Fatalf("about raw = %q", got)
	}
	if got := c.Menu.Title.Text(); got != "Menu" {
		t.Fatalf("nested leaf = %q", got)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	src := phraze.YAMLBytes([]byte("greeting: Hello, {name}!\nfarewell: Goodbye.\nabout: '**bold** talk'\nmenu:\n  title: Menu\n"))
	c := mustLoadDemo(t, src)
	if got := c.Menu.Title.Text(); got != "Menu" {
		t.Fatalf("nested leaf = %q", got)
	}
}

func TestLoad_MissingEntryIsFatal(t *testing.T) {
	src := phraze.JSONBytes([]byte(`{
		"greeting": "Hello, {name}!",
		"farewell": "Goodbye.",
		"about": "**bold** talk",
		"menu": {}
	}`))
	c, err := phraze.Load[demoCatalog](src)
	if c != nil {
		t.Fatalf("expected no catalog on failure, got %+v", c)
	}
	iss, ok := phraze.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != phraze.CodeMissingEntry || iss[0].Path != "/menu/title" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestLoad_NonTextLeafIsFatal(t *testing.T) {
	src := phraze.JSONBytes([]byte(`{
		"greeting": "Hello, {name}!",
		"farewell": 42,
		"about": "**bold** talk",
		"menu": {"title": "Menu"}
	}`))
	_, err := phraze.Load[demoCatalog](src)
	iss, ok := phraze.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != phraze.CodeInvalidType || iss[0].Path != "/farewell" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestLoad_UnknownKeyPolicy(t *testing.T) {
	withExtra := []byte(`{
		"greeting": "Hello, {name}!",
		"farewell": "Goodbye.",
		"about": "**bold** talk",
		"menu": {"title": "Menu"},
		"oops": "unclaimed"
	}`)

	_, err := phraze.Load[demoCatalog](phraze.JSONBytes(withExtra))
	iss, ok := phraze.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("strict: expected one issue, got %v", err)
	}
	if iss[0].Code != phraze.CodeUnknownKey || iss[0].Path != "/oops" {
		t.Fatalf("strict: unexpected issue: %+v", iss[0])
	}

	if _, err := phraze.Load[demoCatalog](phraze.JSONBytes(withExtra), phraze.LoadOpt{OnUnknown: phraze.UnknownStrip}); err != nil {
		t.Fatalf("strip: %v", err)
	}
}

func TestLoad_PlaceholderAudit(t *testing.T) {
	src := func() phraze.Source {
		return phraze.JSONBytes([]byte(`{
			"greeting": "Hello, {nickname}!",
			"farewell": "Goodbye.",
			"about": "**bold** talk",
			"menu": {"title": "Menu"}
		}`))
	}

	// default Ignore: loads fine
	if _, err := phraze.Load[demoCatalog](src()); err != nil {
		t.Fatalf("ignore: %v", err)
	}

	// Warn: loads, reports
	c, warns, err := phraze.LoadWithReport[demoCatalog](src(), phraze.LoadOpt{OnPlaceholder: phraze.Warn})
	if err != nil || c == nil {
		t.Fatalf("warn: %v", err)
	}
	if len(warns) != 1 || warns[0].Code != phraze.CodeUnboundPlaceholder || warns[0].Path != "/greeting" {
		t.Fatalf("warn: unexpected report %+v", warns)
	}

	// Error: fatal
	_, err = phraze.Load[demoCatalog](src(), phraze.LoadOpt{OnPlaceholder: phraze.Error})
	iss, ok := phraze.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != phraze.CodeUnboundPlaceholder {
		t.Fatalf("error: expected unbound_placeholder, got %v", err)
	}
}

func TestLoad_PointerShapeAuditMatchesExpansion(t *testing.T) {
	type ptrCatalog struct {
		Greeting phraze.Simple[*greetSubs] `json:"greeting"`
	}
	src := phraze.JSONBytes([]byte(`{"greeting": "Hello, {name}!"}`))
	c, err := phraze.Load[ptrCatalog](src, phraze.LoadOpt{OnPlaceholder: phraze.Error})
	if err != nil {
		t.Fatalf("audit rejected a pointer shape expansion can serve: %v", err)
	}
	got := phraze.Translate(c, func(c *ptrCatalog) phraze.Simple[*greetSubs] { return c.Greeting }, &greetSubs{Name: "World"})
	if got != "Hello, World!" {
		t.Fatalf("got %q", got)
	}
}

func TestLoad_SameShapeAcrossLocales(t *testing.T) {
	en := mustLoadDemo(t, phraze.JSONBytes([]byte(enJSON)))
	fr := mustLoadDemo(t, phraze.JSONBytes([]byte(frJSON)))
	// both catalogs answer the same accessor paths; only leaf text differs
	if en.Menu.Title.Text() != "Menu" || fr.Menu.Title.Text() != "Menu" {
		t.Fatalf("accessor paths diverged")
	}
	if en.Greeting.Text() == fr.Greeting.Text() {
		t.Fatalf("expected locale-specific leaf text")
	}
}

package phraze

import (
	"fmt"
	"reflect"
	"strings"
)

// Expand replaces {name} tokens in raw with values bound by subs and returns
// the result. subs is either NoSubs (identity) or a struct (optionally behind
// pointers) whose exported fields name the placeholders, resolved via
// ResolveKey. Tokens whose name is not bound, and braces that never close,
// are left byte-for-byte untouched. Shapes that are neither structs nor
// NoSubs bind no placeholders, so the text passes through unchanged.
func Expand(raw string, subs any) string {
	switch subs.(type) {
	case nil, NoSubs:
		return raw
	}
	vals := subsValues(subs)
	if len(vals) == 0 {
		return raw
	}
	if !strings.ContainsRune(raw, '{') {
		return raw
	}
	return expandTokens(raw, vals)
}

func expandTokens(raw string, vals map[string]string) string {
	b := &strings.Builder{}
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			// unterminated: keep the rest as-is
			b.WriteString(raw[i:])
			break
		}
		name := raw[i+1 : i+1+end]
		if v, ok := vals[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(raw[i : i+end+2])
		}
		i += end + 2
	}
	return b.String()
}

// subsValues flattens a substitution struct into name -> rendered text.
// Non-struct values yield nil, which Expand treats as "nothing bound".
func subsValues(subs any) map[string]string {
	rv := reflect.ValueOf(subs)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	out := make(map[string]string, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveKey(sf)
		if name == "" || name == "-" {
			continue
		}
		out[name] = renderValue(rv.Field(i).Interface())
	}
	return out
}

func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// placeholderNames lists the {name} tokens in raw using the same scan Expand
// performs, so the load-time audit and expansion agree on what a token is.
func placeholderNames(raw string) []string {
	var names []string
	for i := 0; i < len(raw); {
		if raw[i] != '{' {
			i++
			continue
		}
		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			break
		}
		names = append(names, raw[i+1:i+1+end])
		i += end + 2
	}
	return names
}

// shapeKeys returns the placeholder names bound by a substitution shape type.
// Pointer shapes are unwrapped the same way subsValues dereferences them, so
// the audit and expansion agree. NoSubs and non-struct shapes bind nothing.
func shapeKeys(t reflect.Type) map[string]struct{} {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveKey(sf)
		if name == "" || name == "-" {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}

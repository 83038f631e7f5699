package phraze

import (
	"fmt"
	"reflect"
	"sort"
)

// UnknownPolicy controls how source keys absent from the catalog type are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// Severity expresses the severity level for the placeholder audit.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// LoadOpt bundles catalog loading options.
type LoadOpt struct {
	// OnUnknown decides the fate of source keys the catalog type does not
	// declare. Default UnknownStrict: loading fails.
	OnUnknown UnknownPolicy
	// OnPlaceholder audits {name} tokens in leaf text against the leaf's
	// declared substitution shape. Ignore skips the audit, Warn reports via
	// LoadWithReport, Error fails the load.
	OnPlaceholder Severity
}

// Load deserializes a locale source onto a freshly allocated catalog of type T.
// T must be a struct whose exported fields are Simple/Processed phrases or
// nested structs mirroring the source's grouping. Loading either succeeds,
// yielding a fully populated catalog, or fails with Issues identifying every
// missing or mistyped entry; partial catalogs are never returned.
func Load[T any](src Source, opts ...LoadOpt) (*T, error) {
	c, _, err := LoadWithReport[T](src, opts...)
	return c, err
}

// LoadWithReport is Load plus the non-fatal audit findings (Warn severity).
func LoadWithReport[T any](src Source, opts ...LoadOpt) (*T, Issues, error) {
	var opt LoadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if src == nil {
		return nil, nil, singleIssue(CodeParseError, "nil source")
	}
	data, err := src.Decode()
	if err != nil {
		return nil, nil, toIssues(err)
	}
	out := new(T)
	rv := reflect.ValueOf(out).Elem()
	if rv.Kind() != reflect.Struct {
		return nil, nil, singleIssue(CodeInvalidType, "Load[T] requires struct T")
	}
	var iss, warns Issues
	bindGroup(rv, data, "", opt, &iss, &warns)
	if len(iss) > 0 {
		return nil, warns, iss
	}
	return out, warns, nil
}

// bindGroup walks one struct level of the catalog, binding leaves from data
// and recursing into nested groups. path carries the slash-joined location.
func bindGroup(rv reflect.Value, data map[string]any, path string, opt LoadOpt, iss, warns *Issues) {
	rt := rv.Type()
	declared := make(map[string]struct{}, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveKey(sf)
		if key == "" || key == "-" {
			continue
		}
		declared[key] = struct{}{}
		p := path + "/" + key
		raw, ok := data[key]
		if !ok {
			*iss = AppendIssues(*iss, Issue{Path: p, Code: CodeMissingEntry, Message: "missing catalog entry"})
			continue
		}
		fv := rv.Field(i)
		if leaf, isLeaf := fv.Addr().Interface().(phraseLeaf); isLeaf {
			s, isText := raw.(string)
			if !isText {
				*iss = AppendIssues(*iss, Issue{Path: p, Code: CodeInvalidType, Message: fmt.Sprintf("expected text, got %T", raw)})
				continue
			}
			leaf.setRaw(s)
			if opt.OnPlaceholder != Ignore {
				auditPlaceholders(s, leaf.shape(), p, opt.OnPlaceholder, iss, warns)
			}
			continue
		}
		if fv.Kind() == reflect.Struct {
			m, isMap := raw.(map[string]any)
			if !isMap {
				*iss = AppendIssues(*iss, Issue{Path: p, Code: CodeInvalidType, Message: fmt.Sprintf("expected group, got %T", raw)})
				continue
			}
			bindGroup(fv, m, p, opt, iss, warns)
			continue
		}
		*iss = AppendIssues(*iss, Issue{Path: p, Code: CodeInvalidType, Message: "catalog fields must be phrases or nested groups"})
	}
	if opt.OnUnknown == UnknownStrict {
		extras := make([]string, 0, len(data))
		for k := range data {
			if _, ok := declared[k]; !ok {
				extras = append(extras, k)
			}
		}
		sort.Strings(extras)
		for _, k := range extras {
			*iss = AppendIssues(*iss, Issue{Path: path + "/" + k, Code: CodeUnknownKey, Message: "key not declared in catalog"})
		}
	}
}

func auditPlaceholders(raw string, shape reflect.Type, path string, sev Severity, iss, warns *Issues) {
	bound := shapeKeys(shape)
	for _, name := range placeholderNames(raw) {
		if _, ok := bound[name]; ok {
			continue
		}
		it := Issue{Path: path, Code: CodeUnboundPlaceholder, Message: fmt.Sprintf("placeholder {%s} is not bound by the substitution shape", name)}
		if sev == Error {
			*iss = AppendIssues(*iss, it)
		} else {
			*warns = AppendIssues(*warns, it)
		}
	}
}

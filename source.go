package phraze

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic locale data inputs. Decode yields the
// nested key/value tree of one locale; values are plain text at rest.
type Source interface {
	Decode() (map[string]any, error)
	Name() string
}

// JSONBytes wraps a JSON document as a Source.
func JSONBytes(b []byte) Source { return jsonSource{data: b} }

// JSONReader wraps a JSON stream as a Source. The reader is consumed on Decode.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct {
	data []byte
	r    io.Reader
}

func (s jsonSource) Name() string { return "json" }

func (s jsonSource) Decode() (map[string]any, error) {
	data := s.data
	if s.r != nil {
		var err error
		data, err = io.ReadAll(s.r)
		if err != nil {
			return nil, toIssues(err)
		}
	}
	var out map[string]any
	if err := j.Unmarshal(data, &out); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	if out == nil {
		return nil, singleIssue(CodeParseError, "locale source must be a JSON object")
	}
	return out, nil
}

// YAMLBytes wraps a YAML document as a Source.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

// YAMLReader wraps a YAML stream as a Source. The reader is consumed on Decode.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

type yamlSource struct {
	data []byte
	r    io.Reader
}

func (s yamlSource) Name() string { return "yaml" }

func (s yamlSource) Decode() (map[string]any, error) {
	data := s.data
	if s.r != nil {
		var err error
		data, err = io.ReadAll(s.r)
		if err != nil {
			return nil, toIssues(err)
		}
	}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return nil, singleIssue(CodeParseError, "locale source must be a YAML mapping")
	}
	return m, nil
}

// FileSource selects the driver by file extension (.json, .yaml, .yml) and
// reads the file on Decode.
func FileSource(path string) Source { return fileSource{path: path} }

type fileSource struct{ path string }

func (s fileSource) Name() string { return filepath.Base(s.path) }

func (s fileSource) Decode() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, toIssues(err)
	}
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".json":
		return jsonSource{data: data}.Decode()
	case ".yaml", ".yml":
		return yamlSource{data: data}.Decode()
	default:
		return nil, singleIssue(CodeParseError, fmt.Sprintf("unsupported locale source extension %q", filepath.Ext(s.path)))
	}
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

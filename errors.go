package phraze

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError         = "parse_error"
	CodeInvalidType        = "invalid_type"
	CodeMissingEntry       = "missing_entry"
	CodeUnknownKey         = "unknown_key"
	CodeDuplicateLocale    = "duplicate_locale"
	CodeUnknownLocale      = "unknown_locale"
	CodeUnboundPlaceholder = "unbound_placeholder"
)

// Issue represents a single catalog or locale problem.
type Issue struct {
	Path    string // Slash path into the catalog tree (for example: /menu/title).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_entry at /menu/title
		if it.Path != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Message: msg}) }

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
}

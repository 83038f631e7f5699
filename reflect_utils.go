package phraze

import (
	"reflect"
	"strings"
)

// ResolveKey resolves the external name of a struct field. One rule covers
// every place a field name crosses into locale data: catalog tree entries
// during Load and placeholder names during Expand. The phraze:"name=..."
// tag wins, then the json tag, then the field name itself; "-" disables
// the field.
func ResolveKey(sf reflect.StructField) string {
	if pt := sf.Tag.Get("phraze"); pt != "" {
		parts := strings.Split(pt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

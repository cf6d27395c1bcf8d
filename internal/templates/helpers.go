package templates

import (
	"html/template"
	"strconv"
)

var funcs = template.FuncMap{
	"itoa":   strconv.Itoa,
	"hidden": hidden,
}

// hidden reports whether a field group tied to ctx is off for the selected
// letter type. Groups with no context are always shown.
func hidden(ctx, active string) bool {
	return ctx != "" && ctx != active
}

package render

import (
	"github.com/flosch/pongo2"
)

func init() {
	pongo2.RegisterFilter("ellipsis", filterEllipsis)
}

// Ellipsis cuts s to n runes and marks the cut.
func Ellipsis(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func filterEllipsis(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(Ellipsis(in.String(), param.Integer())), nil
}

package scaffold

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DeriveToken converts a project name into the lowercase, underscore-separated
// token used for folder names, include-path segments, and generated
// identifiers. A separator is inserted before every uppercase rune that is not
// the first rune, then the whole string is lowercased:
//
//	"MyProject" -> "my_project"
//	"ABC"       -> "a_b_c"
//	"simple"    -> "simple"
//
// The input is NFC-normalized first so that composed and decomposed forms of
// the same name yield the same token. DeriveToken is pure and total; deriving
// from its own output yields the same token again.
func DeriveToken(name string) string {
	name = norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(name) + len(name)/2)

	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

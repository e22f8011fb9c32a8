package render

import (
	"strconv"
	"unicode"
)

// isIdent reports whether a record field name can be printed unquoted.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func quoteField(name string) string {
	if isIdent(name) {
		return name
	}
	return strconv.Quote(name)
}

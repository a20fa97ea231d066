package css

import (
	"strings"

	"github.com/gosimple/slug"
)

// ClassName derives a CSS-safe class name from arbitrary text: transliterated
// to ASCII, lower-cased, spaces and punctuation collapsed to hyphens. CSS
// identifiers must not start with a digit, so a leading digit gets a "c-"
// prefix.
func ClassName(text string) string {
	return identName(text, "c")
}

// IDName is ClassName for id fragments, with an "i-" prefix when needed.
func IDName(text string) string {
	return identName(text, "i")
}

func identName(text, prefix string) string {
	s := slug.Make(text)
	if s == "" {
		return s
	}
	if s[0] >= '0' && s[0] <= '9' || strings.HasPrefix(s, "-") {
		s = prefix + "-" + strings.TrimPrefix(s, "-")
	}
	return s
}

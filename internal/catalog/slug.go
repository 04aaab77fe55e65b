package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// space is the JavaScript \s class: ASCII whitespace, the Unicode space
// separators, U+2028, U+2029 and U+FEFF. U+0085 is not included.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	ampersandRun  = regexp.MustCompile(space + `+&` + space + `+`)
	whitespaceRun = regexp.MustCompile(space + `+`)
)

// Slug derives the URL path segment for a category label:
// lower-case, " & " runs become "-", then whitespace runs become "-".
//
//	Slug("AI & Machine Learning") // "ai-machine-learning"
//	Slug("Maps & Location")       // "maps-location"
func Slug(label string) string {
	s := strings.ToLower(label)
	s = ampersandRun.ReplaceAllString(s, "-")
	return whitespaceRun.ReplaceAllString(s, "-")
}

// MatchesSlug reports whether label derives to slug. The slug is compared
// verbatim.
func MatchesSlug(label, slug string) bool {
	return Slug(label) == slug
}

// DisplayName guesses a readable label from a slug by title-casing each
// hyphen-separated token. It cannot restore "&"; prefer SlugRegistry.Label
// when the slug came from this catalog.
func DisplayName(slug string) string {
	if slug == "" {
		return ""
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

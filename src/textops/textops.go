// Package textops wraps the third-party text transformations used by the
// pipeline: transliteration, tag stripping, link detection, profanity
// censoring and slug generation.
package textops

import (
	"strings"

	goaway "github.com/TwiN/go-away"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mozillazg/go-unidecode"
)

// strictPolicy allows no elements at all, so only text content survives.
var strictPolicy = bluemonday.StrictPolicy()

// quoteUnescaper undoes the quote escaping bluemonday applies to text.
// Quotes are only significant inside attributes, and the output has none.
var quoteUnescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Transliterate maps text onto printable ASCII. It never fails and may
// lose information.
func Transliterate(text string) string {
	return unidecode.Unidecode(text)
}

// StripTags removes all markup and keeps the text content. In the result
// &, < and > are entity-escaped and quotes are left as they are.
func StripTags(text string) string {
	return quoteUnescaper.Replace(strictPolicy.Sanitize(text))
}

// Censor replaces profane words with asterisks.
func Censor(text string) string {
	return goaway.Censor(text)
}

// Slugify maps text to lowercase ASCII words joined by hyphens, suitable
// for file names and URL paths.
func Slugify(text string) string {
	return slug.Make(text)
}

// Package textstate separates text that has not yet been normalized from
// text that has. Diagnostics are only available on Unprocessed values and
// transformations only on Normalized values; Normalize is the one way from
// the first to the second.
package textstate

import (
	"github.com/Easy-Infra-Ltd/eunicode/src/detect"
	"github.com/Easy-Infra-Ltd/eunicode/src/textops"
)

// Unprocessed is display-safe text that has not been normalized.
type Unprocessed struct {
	text string
}

// New wraps text that has already been through the escape filter.
func New(text string) Unprocessed {
	return Unprocessed{text: text}
}

func (u Unprocessed) String() string { return u.text }

// Detect runs the dangerous-character detector on the raw text.
func (u Unprocessed) Detect() detect.Result {
	return detect.Detect(u.text)
}

// Characters reports every character of the raw text.
func (u Unprocessed) Characters() []detect.CharacterReport {
	return detect.Enumerate(u.text)
}

// Normalize transliterates the text to ASCII.
func (u Unprocessed) Normalize() Normalized {
	return Normalized{text: textops.Transliterate(u.text)}
}

// SlugifyRaw slugifies the raw text without normalizing it first. The
// result carries none of the guarantees of a Normalized value.
func (u Unprocessed) SlugifyRaw() string {
	return textops.Slugify(u.text)
}

// Normalized is ASCII text produced by Unprocessed.Normalize or by one of
// the transformations below.
type Normalized struct {
	text string
}

func (n Normalized) String() string { return n.text }

// StripHTML removes markup.
func (n Normalized) StripHTML() Normalized {
	return Normalized{text: textops.StripTags(n.text)}
}

// DefangLinks makes URLs and e-mail addresses non-clickable.
func (n Normalized) DefangLinks() (Normalized, error) {
	out, err := textops.Defang(n.text)
	if err != nil {
		return Normalized{}, err
	}
	return Normalized{text: out}, nil
}

// CensorProfanity masks profane words.
func (n Normalized) CensorProfanity() Normalized {
	return Normalized{text: textops.Censor(n.text)}
}

// Slugify maps the text to a URL slug.
func (n Normalized) Slugify() Normalized {
	return Normalized{text: textops.Slugify(n.text)}
}

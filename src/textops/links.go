package textops

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/xurls/v2"
)

// ErrUnsupportedLinkKind is returned when a link span has a kind the
// defanger has no rule for.
var ErrUnsupportedLinkKind = errors.New("unsupported link kind")

// LinkKind classifies a link span.
type LinkKind int

const (
	LinkURL LinkKind = iota + 1
	LinkEmail
)

func (k LinkKind) String() string {
	switch k {
	case LinkURL:
		return "url"
	case LinkEmail:
		return "email"
	default:
		return fmt.Sprintf("LinkKind(%d)", int(k))
	}
}

// LinkSpan is the byte range [Start, End) of a link in a string.
type LinkSpan struct {
	Start int
	End   int
	Kind  LinkKind
}

var linkPattern = xurls.Relaxed()

// FindLinkSpans locates URLs with an explicit scheme and e-mail addresses.
// Bare domain names are not treated as links.
func FindLinkSpans(text string) []LinkSpan {
	var spans []LinkSpan
	for _, loc := range linkPattern.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		lower := strings.ToLower(match)

		var kind LinkKind
		switch {
		case strings.HasPrefix(lower, "mailto:"):
			kind = LinkEmail
		case strings.Contains(match, "://"):
			kind = LinkURL
		case strings.Contains(match, "@"):
			kind = LinkEmail
		default:
			continue
		}
		spans = append(spans, LinkSpan{Start: loc[0], End: loc[1], Kind: kind})
	}
	return spans
}

// Defang rewrites every link so it is no longer clickable or
// auto-linkified: URLs get fXp/hXXp schemes and bracketed dots, e-mail
// addresses get bracketed @ and dots.
func Defang(text string) (string, error) {
	spans := FindLinkSpans(text)
	if len(spans) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span.Start])
		defanged, err := defangSpan(text[span.Start:span.End], span.Kind)
		if err != nil {
			return "", err
		}
		b.WriteString(defanged)
		last = span.End
	}
	b.WriteString(text[last:])

	return b.String(), nil
}

func defangSpan(link string, kind LinkKind) (string, error) {
	switch kind {
	case LinkURL:
		link = strings.ReplaceAll(link, "ftp", "fXp")
		link = strings.ReplaceAll(link, "http", "hXXp")
		return strings.ReplaceAll(link, ".", "[.]"), nil
	case LinkEmail:
		link = strings.ReplaceAll(link, "@", "[@]")
		return strings.ReplaceAll(link, ".", "[.]"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLinkKind, kind)
	}
}

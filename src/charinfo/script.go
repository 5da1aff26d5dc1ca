package charinfo

import (
	"slices"
	"unicode"
)

// UnknownScript is the Script value for unassigned code points.
const UnknownScript = "Unknown"

// scriptNames holds the keys of unicode.Scripts in a fixed order so lookups
// are deterministic.
var scriptNames = func() []string {
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}()

// Script returns the Unicode script property of r, e.g. "Latin", "Common"
// or "Inherited".
func Script(r rune) string {
	for _, name := range scriptNames {
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	return UnknownScript
}

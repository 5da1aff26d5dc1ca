// Package charinfo looks up per-codepoint Unicode metadata: general
// category, block, script, UTS #39 identifier type and character name.
package charinfo

import (
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

var categories = []struct {
	table *unicode.RangeTable
	name  string
}{
	{unicode.Lu, "UppercaseLetter"},
	{unicode.Ll, "LowercaseLetter"},
	{unicode.Lt, "TitlecaseLetter"},
	{unicode.Lm, "ModifierLetter"},
	{unicode.Lo, "OtherLetter"},
	{unicode.Mn, "NonspacingMark"},
	{unicode.Mc, "SpacingMark"},
	{unicode.Me, "EnclosingMark"},
	{unicode.Nd, "DecimalNumber"},
	{unicode.Nl, "LetterNumber"},
	{unicode.No, "OtherNumber"},
	{unicode.Pc, "ConnectorPunctuation"},
	{unicode.Pd, "DashPunctuation"},
	{unicode.Ps, "OpenPunctuation"},
	{unicode.Pe, "ClosePunctuation"},
	{unicode.Pi, "InitialPunctuation"},
	{unicode.Pf, "FinalPunctuation"},
	{unicode.Po, "OtherPunctuation"},
	{unicode.Sm, "MathSymbol"},
	{unicode.Sc, "CurrencySymbol"},
	{unicode.Sk, "ModifierSymbol"},
	{unicode.So, "OtherSymbol"},
	{unicode.Zs, "SpaceSeparator"},
	{unicode.Zl, "LineSeparator"},
	{unicode.Zp, "ParagraphSeparator"},
	{unicode.Cc, "Control"},
	{unicode.Cf, "Format"},
	{unicode.Cs, "Surrogate"},
	{unicode.Co, "PrivateUse"},
}

// Unassigned is the category of code points outside every other category.
const Unassigned = "Unassigned"

// Category returns the long name of r's general category.
func Category(r rune) string {
	for _, c := range categories {
		if unicode.Is(c.table, r) {
			return c.name
		}
	}
	return Unassigned
}

// Name returns the Unicode character name of r, or "Unknown".
func Name(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "Unknown"
}

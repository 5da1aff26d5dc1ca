package charinfo

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IdentifierType is the UTS #39 identifier type of a code point, ordered
// from most to least restricted.
type IdentifierType int

const (
	Unknown IdentifierType = iota
	NotCharacter
	Deprecated
	DefaultIgnorable
	NotNFKC
	NotXID
	Exclusion
	Obsolete
	Technical
	UncommonUse
	LimitedUse
	Inclusion
	Recommended
)

func (t IdentifierType) String() string {
	switch t {
	case NotCharacter:
		return "Not Character"
	case Deprecated:
		return "Deprecated"
	case DefaultIgnorable:
		return "Default Ignorable"
	case NotNFKC:
		return "Not NFKC"
	case NotXID:
		return "Not XID"
	case Exclusion:
		return "Exclusion"
	case Obsolete:
		return "Obsolete"
	case Technical:
		return "Technical"
	case UncommonUse:
		return "Uncommon Use"
	case LimitedUse:
		return "Limited Use"
	case Inclusion:
		return "Inclusion"
	case Recommended:
		return "Recommended"
	default:
		return "Unknown Character Type"
	}
}

// inclusionTable lists the characters UAX #31 adds back to identifiers.
var inclusionTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0027, Hi: 0x0027, Stride: 1},
		{Lo: 0x002D, Hi: 0x002E, Stride: 1},
		{Lo: 0x003A, Hi: 0x003A, Stride: 1},
		{Lo: 0x00B7, Hi: 0x00B7, Stride: 1},
		{Lo: 0x0375, Hi: 0x0375, Stride: 1},
		{Lo: 0x058A, Hi: 0x058A, Stride: 1},
		{Lo: 0x05F3, Hi: 0x05F4, Stride: 1},
		{Lo: 0x06FD, Hi: 0x06FE, Stride: 1},
		{Lo: 0x0F0B, Hi: 0x0F0B, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2010, Hi: 0x2010, Stride: 1},
		{Lo: 0x2019, Hi: 0x2019, Stride: 1},
		{Lo: 0x2027, Hi: 0x2027, Stride: 1},
		{Lo: 0x30A0, Hi: 0x30A0, Stride: 1},
		{Lo: 0x30FB, Hi: 0x30FB, Stride: 1},
	},
}

// ignorableExceptions are format characters that are not default
// ignorable (interlinear annotation and Egyptian format controls).
var ignorableExceptions = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xFFF9, Hi: 0xFFFB, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0x13430, Hi: 0x1343F, Stride: 1}},
}

// excludedScripts are UAX #31 Table 4 scripts not in customary modern use.
var excludedScripts = setOf(
	"Ahom", "Anatolian_Hieroglyphs", "Avestan", "Bassa_Vah", "Bhaiksuki",
	"Brahmi", "Braille", "Buginese", "Buhid", "Carian", "Caucasian_Albanian",
	"Coptic", "Cypriot", "Cypro_Minoan", "Deseret", "Dives_Akuru", "Dogra",
	"Duployan", "Egyptian_Hieroglyphs", "Elbasan", "Elymaic", "Glagolitic",
	"Gothic", "Grantha", "Gunjala_Gondi", "Hanunoo", "Hatran",
	"Imperial_Aramaic", "Inscriptional_Pahlavi", "Inscriptional_Parthian",
	"Kaithi", "Kawi", "Kharoshthi", "Khitan_Small_Script", "Khojki",
	"Khudawadi", "Linear_A", "Linear_B", "Lycian", "Lydian", "Mahajani",
	"Makasar", "Manichaean", "Marchen", "Masaram_Gondi", "Medefaidrin",
	"Mende_Kikakui", "Meroitic_Cursive", "Meroitic_Hieroglyphs", "Modi",
	"Mongolian", "Mro", "Multani", "Nabataean", "Nag_Mundari", "Nandinagari",
	"Nushu", "Ogham", "Old_Hungarian", "Old_Italic", "Old_North_Arabian",
	"Old_Permic", "Old_Persian", "Old_Sogdian", "Old_South_Arabian",
	"Old_Turkic", "Old_Uyghur", "Osage", "Pahawh_Hmong", "Palmyrene",
	"Pau_Cin_Hau", "Phags_Pa", "Phoenician", "Psalter_Pahlavi", "Runic",
	"Samaritan", "Sharada", "Shavian", "Siddham", "SignWriting", "Sogdian",
	"Sora_Sompeng", "Soyombo", "Tagalog", "Tagbanwa", "Takri", "Tangsa",
	"Tangut", "Tirhuta", "Toto", "Ugaritic", "Vithkuqi", "Warang_Citi",
	"Yezidi", "Zanabazar_Square",
)

// limitedScripts are UAX #31 Table 7 scripts in limited modern use.
var limitedScripts = setOf(
	"Adlam", "Balinese", "Bamum", "Batak", "Canadian_Aboriginal", "Chakma",
	"Cham", "Cherokee", "Hanifi_Rohingya", "Javanese", "Kayah_Li", "Lepcha",
	"Limbu", "Lisu", "Mandaic", "Meetei_Mayek", "Miao", "New_Tai_Lue", "Newa",
	"Nko", "Nyiakeng_Puachue_Hmong", "Ol_Chiki", "Saurashtra", "Sundanese",
	"Syloti_Nagri", "Syriac", "Tai_Le", "Tai_Tham", "Tai_Viet", "Tifinagh",
	"Vai", "Wancho", "Yi",
)

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// IdentifierTypeOf derives the identifier type of r from its Unicode
// properties. Checks run from most to least restrictive and the first
// match wins.
//
// The result approximates the UTS #39 IdentifierType data, which the
// standard library does not ship. Common-script identifier characters
// outside ASCII (such as U+203F UNDERTIE) have no derivable type and
// report Unknown. Obsolete, Technical and UncommonUse are never returned;
// characters the data file gives those types come back as Recommended or
// one of the property-based types above.
func IdentifierTypeOf(r rune) IdentifierType {
	switch {
	case isNotCharacter(r):
		return NotCharacter
	case unicode.Is(unicode.Deprecated, r):
		return Deprecated
	case unicode.Is(inclusionTable, r):
		return Inclusion
	case isDefaultIgnorable(r):
		return DefaultIgnorable
	case !norm.NFKC.IsNormalString(string(r)):
		return NotNFKC
	case !isXIDContinue(r):
		return NotXID
	}

	script := Script(r)
	if _, ok := excludedScripts[script]; ok {
		return Exclusion
	}
	if _, ok := limitedScripts[script]; ok {
		return LimitedUse
	}
	switch script {
	case "Common":
		if r <= unicode.MaxASCII {
			return Recommended
		}
		return Unknown
	case UnknownScript:
		return Unknown
	}
	return Recommended
}

// Allowed reports whether r has UTS #39 identifier status Allowed.
func Allowed(r rune) bool {
	t := IdentifierTypeOf(r)
	return t == Recommended || t == Inclusion
}

func isNotCharacter(r rune) bool {
	switch Category(r) {
	case Unassigned, "Surrogate", "PrivateUse":
		return true
	case "Control":
		return !unicode.Is(unicode.White_Space, r)
	}
	return unicode.Is(unicode.Noncharacter_Code_Point, r)
}

func isDefaultIgnorable(r rune) bool {
	if unicode.Is(unicode.White_Space, r) {
		return false
	}
	if unicode.In(r, unicode.Other_Default_Ignorable_Code_Point, unicode.Variation_Selector) {
		return true
	}
	return unicode.Is(unicode.Cf, r) &&
		!unicode.Is(unicode.Prepended_Concatenation_Mark, r) &&
		!unicode.Is(ignorableExceptions, r)
}

// isXIDContinue approximates XID_Continue with the derivation from UAX #31.
func isXIDContinue(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r,
		unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Start, unicode.Other_ID_Continue,
	)
}

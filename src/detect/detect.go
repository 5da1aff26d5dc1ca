// Package detect decides whether text is safe under the ASCII-only
// identifier policy and reports the characters that make it unsafe.
package detect

import (
	"fmt"

	"github.com/Easy-Infra-Ltd/eunicode/src/charinfo"
	"github.com/Easy-Infra-Ltd/eunicode/src/textops"
	"github.com/mtibben/confusables"
	"golang.org/x/text/unicode/norm"
)

// Policy names a restriction level. Only ASCIIOnly is supported.
type Policy int

const (
	ASCIIOnly Policy = iota
)

func (p Policy) String() string {
	if p == ASCIIOnly {
		return "ascii-only"
	}
	return "unknown"
}

// CharacterReport describes one character of the skeleton sequence.
type CharacterReport struct {
	Index          int    `json:"index"`
	Char           string `json:"char"`
	Rune           string `json:"codepoint"`
	Category       string `json:"category"`
	Block          string `json:"block"`
	Script         string `json:"script"`
	IdentifierType string `json:"identifierType"`
	Name           string `json:"name"`
}

// Result is the verdict of Detect. Report is empty when Safe.
type Result struct {
	Safe   bool
	Report []CharacterReport
}

// CheckRestriction reports whether every rune of text satisfies policy.
// ASCIIOnly requires ASCII runes that are also allowed in identifiers, so
// spaces and most punctuation fail it.
func CheckRestriction(text string, policy Policy) bool {
	if policy != ASCIIOnly {
		return false
	}
	for _, r := range text {
		if r > 0x7f || !charinfo.Allowed(r) {
			return false
		}
	}
	return true
}

// Skeleton returns the confusable skeleton of text, recomposed to NFC so a
// base letter and its combining marks count as one character.
func Skeleton(text string) []rune {
	return []rune(norm.NFC.String(confusables.Skeleton(text)))
}

// Detect evaluates text against the ASCII-only policy. When the policy
// fails, every skeleton character that is neither ASCII graphic nor ASCII
// whitespace is reported. Text that fails the policy only because of
// visible non-ASCII letters is Safe.
func Detect(text string) Result {
	if CheckRestriction(text, ASCIIOnly) {
		return Result{Safe: true}
	}

	var report []CharacterReport
	for i, r := range Skeleton(text) {
		if isASCIIGraphic(r) || isASCIIWhitespace(r) {
			continue
		}
		report = append(report, describe(i, r))
	}

	return Result{Safe: len(report) == 0, Report: report}
}

// Enumerate reports every character of the skeleton of text.
func Enumerate(text string) []CharacterReport {
	skeleton := Skeleton(text)
	reports := make([]CharacterReport, 0, len(skeleton))
	for i, r := range skeleton {
		reports = append(reports, describe(i, r))
	}
	return reports
}

func describe(index int, r rune) CharacterReport {
	return CharacterReport{
		Index:          index,
		Char:           textops.Transliterate(string(r)),
		Rune:           fmt.Sprintf("%U", r),
		Category:       charinfo.Category(r),
		Block:          charinfo.Block(r),
		Script:         charinfo.Script(r),
		IdentifierType: charinfo.IdentifierTypeOf(r).String(),
		Name:           charinfo.Name(r),
	}
}

func isASCIIGraphic(r rune) bool {
	return r >= 0x21 && r <= 0x7e
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

package escape

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/parser"
)

// maxParamDigits bounds the significant digits of one parameter. Longer
// values would overflow the parser's packed 31-bit parameters.
const maxParamDigits = 9

// Classify decodes b into the ordered list of actions it contains. It never
// fails: malformed or truncated sequences are classified as the closest
// matching action, and the Raw bytes of the result always concatenate back
// to b.
func Classify(b []byte) []Action {
	actions := make([]Action, 0, len(b)/4+1)

	p := ansi.NewParser()
	state := ansi.NormalState
	for len(b) > 0 {
		dp := p
		if !headerFits(b) {
			dp = nil
		}

		_, _, n, newState := ansi.DecodeSequence(b, state, dp)
		if n <= 0 || n > len(b) {
			n = 1
		}
		state = newState

		raw := b[:n:n]
		b = b[n:]
		actions = append(actions, classifySequence(raw, dp))
	}

	return actions
}

// headerFits reports whether the CSI or DCS header at the start of b can be
// collected by an ansi.Parser without loss. The parser holds at most
// parser.MaxParamsSize parameters and keeps only the last prefix and
// intermediate byte, so headers beyond that are classified from their
// boundaries alone. Other sequences always fit.
func headerFits(b []byte) bool {
	var body []byte
	switch {
	case len(b) > 1 && b[0] == ansi.ESC && (b[1] == '[' || b[1] == 'P'):
		body = b[2:]
	case b[0] == ansi.CSI || b[0] == ansi.DCS:
		body = b[1:]
	default:
		return true
	}

	seps, digits, prefixes, inters := 0, 0, 0, 0
	for _, c := range body {
		switch {
		case c >= '0' && c <= '9':
			if digits > 0 || c != '0' {
				digits++
			}
			if digits > maxParamDigits {
				return false
			}
		case c == ';' || c == ':':
			seps++
			digits = 0
			if seps >= parser.MaxParamsSize-1 {
				return false
			}
		case c >= '<' && c <= '?':
			prefixes++
		case c >= ' ' && c <= '/':
			inters++
		default:
			return prefixes <= 1 && inters <= 1
		}
	}
	return prefixes <= 1 && inters <= 1
}

// classifySequence maps one decoded sequence to its action. p holds what
// the parser collected for raw, or is nil when the header did not fit.
func classifySequence(raw []byte, p *ansi.Parser) Action {
	c := raw[0]

	switch {
	case c == ansi.ESC && len(raw) > 1:
		return classifyEscape(raw, p)
	case c < 0x20 || c == ansi.DEL:
		if len(raw) == 1 {
			return Control{Code: ControlCode(c)}
		}
		return Unrecognized{opaque{raw}}
	case c >= 0x80 && c <= 0x9f:
		return classifyC1(raw, p)
	}

	return classifyPrint(raw)
}

// classifyEscape handles 7-bit introducers.
func classifyEscape(raw []byte, p *ansi.Parser) Action {
	switch raw[1] {
	case '[':
		return newCSI(raw, p)
	case ']':
		return OperatingSystemCommand{opaque{raw}}
	case 'P':
		return classifyDCS(raw, p)
	case '_':
		return classifyAPC(raw, p)
	case '^', 'X':
		return Unrecognized{opaque{raw}}
	}
	return Escape{opaque{raw}}
}

// classifyC1 handles 8-bit introducers. Lone C1 bytes outside these
// introducers are dropped as unrecognized.
func classifyC1(raw []byte, p *ansi.Parser) Action {
	switch raw[0] {
	case ansi.CSI:
		return newCSI(raw, p)
	case ansi.OSC:
		return OperatingSystemCommand{opaque{raw}}
	case ansi.DCS:
		return classifyDCS(raw, p)
	case ansi.APC:
		return classifyAPC(raw, p)
	}
	return Unrecognized{opaque{raw}}
}

func classifyDCS(raw []byte, p *ansi.Parser) Action {
	if p == nil {
		return DeviceControl{opaque{raw}}
	}

	cmd := ansi.Cmd(p.Command())
	switch {
	case cmd.Final() == 'q' && cmd.Intermediate() == 0 && cmd.Prefix() == 0:
		return ImageData{opaque{raw}}
	case cmd.Final() == 'q' && cmd.Intermediate() == '+':
		return CapabilityQuery{opaque{raw}}
	}
	return DeviceControl{opaque{raw}}
}

func classifyAPC(raw []byte, p *ansi.Parser) Action {
	if p == nil {
		return Unrecognized{opaque{raw}}
	}
	if data := p.Data(); len(data) > 0 && data[0] == 'G' {
		return ImageData{opaque{raw}}
	}
	return Unrecognized{opaque{raw}}
}

func classifyPrint(raw []byte) Action {
	r, size := utf8.DecodeRune(raw)
	if size == len(raw) {
		if r >= 0x80 && r <= 0x9f {
			// UTF-8 encoded C1 controls act as 8-bit introducers on some
			// terminals.
			return Unrecognized{opaque{raw}}
		}
		return PrintChar{opaque: opaque{raw}, Rune: r}
	}
	if !utf8.Valid(raw) {
		// A cluster with invalid bytes in it collapses to one replacement
		// character.
		return PrintChar{opaque: opaque{raw}, Rune: utf8.RuneError}
	}
	return PrintString{opaque: opaque{raw}, Text: string(raw)}
}

package escape

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/parser"
)

// newCSI builds a CSI from the command and parameters the parser collected
// for raw. A nil parser, or a zero final byte from a truncated sequence,
// leaves the kind unspecified.
func newCSI(raw []byte, p *ansi.Parser) CSI {
	c := CSI{opaque: opaque{raw}}
	if p == nil {
		return c
	}

	c.Cmd = ansi.Cmd(p.Command())
	// The parser reuses its buffer for the next sequence.
	c.Params = slices.Clone(p.Params())
	if c.Cmd.Final() == 0 {
		return c
	}

	c.Kind = csiKind(c.Cmd.Prefix(), c.Cmd.Intermediate(), c.Cmd.Final())
	if c.Kind == CsiSGR {
		params, ok := sgrParams(c.Params)
		if !ok {
			c.Kind = CsiUnspecified
			return c
		}
		c.sgr = params
	}
	return c
}

func csiKind(prefix, intermediate, final byte) CsiKind {
	switch {
	case prefix == '<' && (final == 'M' || final == 'm'):
		return CsiMouse
	case final == 'u' && prefix != 0:
		return CsiKeyboard
	case final == 'm' && prefix == '>':
		return CsiKeyboard
	case intermediate == ' ' && final == 'k':
		return CsiCharacterPath
	case intermediate == ' ' && final == 'q':
		return CsiCursor
	case intermediate == '$' && final == 'p':
		return CsiMode
	case intermediate == '!' && final == 'p':
		return CsiDevice
	case final == 'h' || final == 'l':
		return CsiMode
	case final == 't':
		return CsiWindow
	case final == 'c' || final == 'n':
		return CsiDevice
	case intermediate != 0 || prefix != 0:
		return CsiUnspecified
	}

	switch final {
	case 'm':
		return CsiSGR
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'Z',
		'a', 'd', 'e', 'f', 'g', '`', 'j', 'k', 'r', 's', 'u':
		return CsiCursor
	case 'J', 'K', 'L', 'M', 'P', 'S', 'T', 'X', '@', 'b':
		return CsiEdit
	}
	return CsiUnspecified
}

// sgrParams validates SGR parameters and returns them in canonical form:
// one entry per ';' separated parameter, missing parameters as "0", leading
// zeros removed. Colon sub-parameters are kept and may be empty, except the
// first of a group.
func sgrParams(params ansi.Params) ([]string, bool) {
	if len(params) == 0 {
		return []string{"0"}, true
	}

	out := make([]string, 0, len(params))
	var group strings.Builder
	first := true
	for _, param := range params {
		v := param.Param(-1)
		switch {
		case v > parser.MaxParam:
			return nil, false
		case v >= 0:
			group.WriteString(strconv.Itoa(v))
		case first && param.HasMore():
			return nil, false
		case first:
			group.WriteByte('0')
		}

		if param.HasMore() {
			group.WriteByte(':')
			first = false
			continue
		}
		out = append(out, group.String())
		group.Reset()
		first = true
	}
	return out, true
}

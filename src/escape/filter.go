package escape

import "strings"

// Filter serialises the actions that are safe to print. Printable text and
// the whitespace-like controls BS, HT, LF, VT, FF and CR are kept. SGR
// sequences are kept only when keepColors is set, and are rebuilt from
// their parsed parameters. Everything else is dropped.
func Filter(actions []Action, keepColors bool) string {
	var b strings.Builder

	for _, a := range actions {
		switch a := a.(type) {
		case PrintChar:
			b.WriteRune(a.Rune)
		case PrintString:
			b.WriteString(a.Text)
		case Control:
			if keptControl(a.Code) {
				b.WriteByte(byte(a.Code))
			}
		case CSI:
			if keepColors && a.Kind == CsiSGR {
				b.WriteString(a.Sequence())
			}
		default:
			// Escape, DeviceControl, OperatingSystemCommand, ImageData,
			// CapabilityQuery, Unrecognized and any future kind.
		}
	}

	return b.String()
}

// Strip decodes b and returns its display-safe text.
func Strip(b []byte, keepColors bool) string {
	return Filter(Classify(b), keepColors)
}

func keptControl(c ControlCode) bool {
	switch c {
	case Backspace, HorizontalTab, LineFeed, VerticalTab, FormFeed, CarriageReturn:
		return true
	}
	return false
}

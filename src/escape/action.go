// Package escape decodes raw terminal byte streams into typed actions and
// filters them down to text that is safe to print to a terminal.
package escape

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Action is one decoded unit of a terminal byte stream. The set of
// implementations is closed; consumers switch on the concrete type and must
// treat any type they do not recognise as droppable.
type Action interface {
	// Raw returns the exact input bytes this action was decoded from.
	Raw() []byte

	action()
}

type opaque struct {
	raw []byte
}

func (o opaque) Raw() []byte { return o.raw }
func (opaque) action()       {}

// PrintChar is a single printable character. Invalid UTF-8 input decodes
// to one PrintChar holding U+FFFD per invalid sequence.
type PrintChar struct {
	opaque
	Rune rune
}

// PrintString is a printable grapheme cluster made of several runes.
type PrintString struct {
	opaque
	Text string
}

// Control is a C0 control code or DEL.
type Control struct {
	Code ControlCode
}

func (c Control) Raw() []byte { return []byte{byte(c.Code)} }
func (Control) action()       {}

// Escape is a two-or-three byte ESC sequence that is not a CSI, DCS, OSC,
// APC, PM or SOS introducer (charset designation, keypad modes, RIS...).
type Escape struct{ opaque }

// DeviceControl is a DCS string that is neither an image nor a
// capability query.
type DeviceControl struct{ opaque }

// OperatingSystemCommand is an OSC string (window titles, hyperlinks,
// clipboard writes and similar).
type OperatingSystemCommand struct{ opaque }

// ImageData is inline graphics: Sixel DCS strings or Kitty graphics APC
// strings.
type ImageData struct{ opaque }

// CapabilityQuery is an XTGETTCAP request (DCS + q).
type CapabilityQuery struct{ opaque }

// Unrecognized covers every other sequence: C1 controls, PM, SOS and
// APC strings that are not graphics.
type Unrecognized struct{ opaque }

// CSI is a control sequence introduced by ESC [ or the 8-bit CSI byte.
type CSI struct {
	opaque
	Kind CsiKind
	// Cmd packs the private prefix, intermediate and final byte. It is zero
	// for headers too long to collect.
	Cmd    ansi.Cmd
	Params ansi.Params

	sgr []string
}

// Sequence re-serialises an SGR sequence from its parsed parameters. It
// returns "" for every other kind.
func (c CSI) Sequence() string {
	if c.Kind != CsiSGR {
		return ""
	}
	return "\x1b[" + strings.Join(c.sgr, ";") + "m"
}

// ControlCode is an ASCII C0 control code or DEL.
type ControlCode byte

const (
	Null ControlCode = iota
	StartOfHeading
	StartOfText
	EndOfText
	EndOfTransmission
	Enquiry
	Acknowledge
	Bell
	Backspace
	HorizontalTab
	LineFeed
	VerticalTab
	FormFeed
	CarriageReturn
	ShiftOut
	ShiftIn
	DataLinkEscape
	DeviceControlOne
	DeviceControlTwo
	DeviceControlThree
	DeviceControlFour
	NegativeAcknowledge
	SynchronousIdle
	EndOfTransmissionBlock
	Cancel
	EndOfMedium
	Substitute
	Esc
	FileSeparator
	GroupSeparator
	RecordSeparator
	UnitSeparator

	Delete ControlCode = 0x7f
)

var controlNames = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

func (c ControlCode) String() string {
	if int(c) < len(controlNames) {
		return controlNames[c]
	}
	if c == Delete {
		return "DEL"
	}
	return "unknown"
}

// CsiKind is the parsed subtype of a CSI sequence.
type CsiKind int

const (
	CsiUnspecified CsiKind = iota
	CsiSGR
	CsiCursor
	CsiEdit
	CsiMode
	CsiDevice
	CsiMouse
	CsiWindow
	CsiKeyboard
	CsiCharacterPath
)

func (k CsiKind) String() string {
	switch k {
	case CsiSGR:
		return "sgr"
	case CsiCursor:
		return "cursor"
	case CsiEdit:
		return "edit"
	case CsiMode:
		return "mode"
	case CsiDevice:
		return "device"
	case CsiMouse:
		return "mouse"
	case CsiWindow:
		return "window"
	case CsiKeyboard:
		return "keyboard"
	case CsiCharacterPath:
		return "character-path"
	default:
		return "unspecified"
	}
}

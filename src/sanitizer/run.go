package sanitizer

import (
	"context"
	"fmt"

	"github.com/Easy-Infra-Ltd/eunicode/src/detect"
	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// Mode selects what Run does with its input.
type Mode int

const (
	// ModeNone means no operation was selected.
	ModeNone Mode = iota
	// ModeTransform normalizes the text and runs the pipeline steps.
	ModeTransform
	// ModeRawSlug slugifies the text without normalizing it.
	ModeRawSlug
	// ModeDetect checks the text for dangerous characters.
	ModeDetect
	// ModeCharacters reports every character of the text.
	ModeCharacters
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeTransform:
		return "transform"
	case ModeRawSlug:
		return "raw-slugify"
	case ModeDetect:
		return "detect"
	case ModeCharacters:
		return "chars"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Status is the process exit status for an Outcome.
type Status int

const (
	StatusOK         Status = 0
	StatusUsage      Status = 1
	StatusDiagnostic Status = 2
)

const (
	MsgNoOperation = "no operation selected; pass a transformation or diagnostic flag"
	MsgUnsafe      = "dangerous characters detected"
)

// Outcome is the result of Run. Text is only set when Status is StatusOK
// and is the only part meant for the success channel.
type Outcome struct {
	Status  Status
	Text    string
	Message string
	Report  []detect.CharacterReport
}

// Run applies mode to in. Diagnostic modes never put the input in Text
// unless the detector judged it safe.
func (p *Pipeline) Run(ctx context.Context, in textstate.Unprocessed, mode Mode) (Outcome, error) {
	switch mode {
	case ModeDetect:
		res := in.Detect()
		if res.Safe {
			return Outcome{Status: StatusOK, Text: in.String()}, nil
		}
		return Outcome{Status: StatusDiagnostic, Message: MsgUnsafe, Report: res.Report}, nil

	case ModeCharacters:
		return Outcome{Status: StatusDiagnostic, Report: in.Characters()}, nil

	case ModeRawSlug:
		return Outcome{Status: StatusOK, Text: in.SlugifyRaw()}, nil

	case ModeTransform:
		res, err := p.Process(ctx, in.Normalize())
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: StatusOK, Text: res.FinalText.String()}, nil

	case ModeNone:
		return Outcome{Status: StatusUsage, Message: MsgNoOperation}, nil
	}

	return Outcome{}, fmt.Errorf("unsupported mode %s", mode)
}

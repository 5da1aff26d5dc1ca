package sanitizer

import (
	"context"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// HTMLStep removes HTML tags and keeps their text content.
type HTMLStep struct{}

func (HTMLStep) Name() string { return "strip" }

func (s HTMLStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	return outcome(s.Name(), text, text.StripHTML(), "html tags removed"), nil
}

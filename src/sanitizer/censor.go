package sanitizer

import (
	"context"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// CensorStep masks profanity.
type CensorStep struct{}

func (CensorStep) Name() string { return "censor" }

func (s CensorStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	return outcome(s.Name(), text, text.CensorProfanity(), "profanity censored"), nil
}

package sanitizer

import (
	"context"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// DefangStep rewrites URLs and e-mail addresses so they are no longer
// clickable. Link kinds without a rewrite rule fail the step.
type DefangStep struct{}

func (DefangStep) Name() string { return "defang" }

func (s DefangStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	defanged, err := text.DefangLinks()
	if err != nil {
		return StepResult{}, err
	}
	return outcome(s.Name(), text, defanged, "links defanged"), nil
}

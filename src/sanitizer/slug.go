package sanitizer

import (
	"context"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// SlugStep converts text into a slug suitable for URLs and file names.
type SlugStep struct{}

func (SlugStep) Name() string { return "slugify" }

func (s SlugStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	return outcome(s.Name(), text, text.Slugify(), "slugified"), nil
}

// Package sanitizer chains the transformations that run on normalized
// text and maps a selected operating mode to a final outcome.
package sanitizer

import (
	"context"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// Step transforms normalized text. Implementations return the text to
// carry forward in the StepResult.
type Step interface {
	// Name returns the operation name used in config and logs.
	Name() string

	// Apply transforms text and returns a StepResult.
	Apply(ctx context.Context, text textstate.Normalized) (StepResult, error)
}

// outcome builds the StepResult for a step that turned before into after.
func outcome(name string, before, after textstate.Normalized, change string) StepResult {
	if before.String() == after.String() {
		return StepResult{Verdict: VerdictPass, Text: after, StepName: name}
	}
	return StepResult{Verdict: VerdictModify, Text: after, Changes: []string{change}, StepName: name}
}

package sanitizer

import (
	"context"
	"fmt"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

// Pipeline executes an ordered sequence of Steps against normalized text,
// threading each step's output into the next.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from the given steps. Execution order
// matches the slice order.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Names returns the step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name())
	}
	return names
}

// Process runs all steps in order and returns an aggregated result. The
// first error aborts the run.
func (p *Pipeline) Process(ctx context.Context, text textstate.Normalized) (PipelineResult, error) {
	current := text
	result := PipelineResult{
		FinalVerdict: VerdictPass,
		StepResults:  make([]StepResult, 0, len(p.steps)),
	}

	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		sr, err := s.Apply(ctx, current)
		if err != nil {
			return result, fmt.Errorf("step %s: %w", s.Name(), err)
		}

		result.StepResults = append(result.StepResults, sr)
		result.AllChanges = append(result.AllChanges, sr.Changes...)

		if sr.Verdict == VerdictModify {
			result.FinalVerdict = VerdictModify
		}
		current = sr.Text
	}

	result.FinalText = current
	return result, nil
}

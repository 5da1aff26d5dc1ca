package sanitizer

import "github.com/Easy-Infra-Ltd/eunicode/src/textstate"

// Verdict represents the outcome of a step.
type Verdict int

const (
	// VerdictPass means the step left the text unchanged.
	VerdictPass Verdict = iota
	// VerdictModify means the step rewrote the text.
	VerdictModify
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictModify:
		return "modify"
	default:
		return "unknown"
	}
}

// StepResult is the outcome of a single Step.
type StepResult struct {
	Verdict  Verdict
	Text     textstate.Normalized
	Changes  []string // human-readable descriptions of what changed
	StepName string
}

// PipelineResult aggregates results from all steps in a pipeline.
type PipelineResult struct {
	FinalVerdict Verdict
	FinalText    textstate.Normalized
	AllChanges   []string
	StepResults  []StepResult
}

package sanitizer

import (
	"context"
	"errors"
	"testing"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

func normalized(s string) textstate.Normalized {
	return textstate.New(s).Normalize()
}

// stubStep is a test helper that returns a preconfigured result.
type stubStep struct {
	name    string
	verdict Verdict
	out     string
	changes []string
	err     error
}

func (s stubStep) Name() string { return s.name }
func (s stubStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	if s.err != nil {
		return StepResult{}, s.err
	}
	r := StepResult{Verdict: s.verdict, Text: text, Changes: s.changes, StepName: s.name}
	if s.out != "" {
		r.Text = normalized(s.out)
	}
	return r, nil
}

func TestPipeline_AllPass(t *testing.T) {
	p := NewPipeline(
		stubStep{name: "a", verdict: VerdictPass},
		stubStep{name: "b", verdict: VerdictPass},
	)

	res, err := p.Process(context.Background(), normalized("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FinalVerdict != VerdictPass {
		t.Errorf("verdict = %v, want Pass", res.FinalVerdict)
	}
	if res.FinalText.String() != "hello" {
		t.Errorf("text = %q, want %q", res.FinalText, "hello")
	}
	if len(res.StepResults) != 2 {
		t.Errorf("step results count = %d, want 2", len(res.StepResults))
	}
}

func TestPipeline_ModifyThreadsText(t *testing.T) {
	var seen string
	p := NewPipeline(
		stubStep{name: "modifier", verdict: VerdictModify, out: "modified"},
		&recordingStep{seen: &seen},
	)

	res, err := p.Process(context.Background(), normalized("original"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FinalVerdict != VerdictModify {
		t.Errorf("verdict = %v, want Modify", res.FinalVerdict)
	}
	if res.FinalText.String() != "modified" {
		t.Errorf("text = %q, want %q", res.FinalText, "modified")
	}
	if seen != "modified" {
		t.Errorf("second step saw %q, want %q", seen, "modified")
	}
}

func TestPipeline_ErrorAborts(t *testing.T) {
	stepErr := errors.New("step failed")
	var seen string
	p := NewPipeline(
		stubStep{name: "broken", err: stepErr},
		&recordingStep{seen: &seen},
	)

	_, err := p.Process(context.Background(), normalized("input"))
	if !errors.Is(err, stepErr) {
		t.Errorf("error = %v, want %v", err, stepErr)
	}
	if seen != "" {
		t.Error("second step should not have run after an error")
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(stubStep{name: "a", verdict: VerdictPass})
	_, err := p.Process(ctx, normalized("input"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestPipeline_ChangesAccumulate(t *testing.T) {
	p := NewPipeline(
		stubStep{name: "a", verdict: VerdictModify, out: "cleaned", changes: []string{"change-1"}},
		stubStep{name: "b", verdict: VerdictModify, out: "double-cleaned", changes: []string{"change-2"}},
	)

	res, err := p.Process(context.Background(), normalized("input"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.AllChanges) != 2 {
		t.Errorf("changes count = %d, want 2", len(res.AllChanges))
	}
}

func TestPipeline_Empty(t *testing.T) {
	p := NewPipeline()
	res, err := p.Process(context.Background(), normalized("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FinalVerdict != VerdictPass {
		t.Errorf("verdict = %v, want Pass", res.FinalVerdict)
	}
	if res.FinalText.String() != "hello" {
		t.Errorf("text = %q, want %q", res.FinalText, "hello")
	}
	if p.Len() != 0 {
		t.Errorf("len = %d, want 0", p.Len())
	}
}

// recordingStep records the text it was given.
type recordingStep struct {
	seen *string
}

func (s *recordingStep) Name() string { return "recording" }
func (s *recordingStep) Apply(_ context.Context, text textstate.Normalized) (StepResult, error) {
	*s.seen = text.String()
	return StepResult{Verdict: VerdictPass, Text: text}, nil
}

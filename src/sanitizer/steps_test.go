package sanitizer

import (
	"context"
	"testing"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		input   string
		want    string
		verdict Verdict
	}{
		{"strip tags", HTMLStep{}, "<b>bold</b> move", "bold move", VerdictModify},
		{"strip clean", HTMLStep{}, "plain", "plain", VerdictPass},
		{"defang url", DefangStep{}, "go to https://evil.com", "go to hXXps://evil[.]com", VerdictModify},
		{"defang email", DefangStep{}, "bob@example.org", "bob[@]example[.]org", VerdictModify},
		{"defang clean", DefangStep{}, "no links", "no links", VerdictPass},
		{"censor", CensorStep{}, "what the fuck", "what the ****", VerdictModify},
		{"censor clean", CensorStep{}, "hello", "hello", VerdictPass},
		{"slugify", SlugStep{}, "Hello World!", "hello-world", VerdictModify},
		{"slugify clean", SlugStep{}, "already-a-slug", "already-a-slug", VerdictPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.step.Apply(context.Background(), normalized(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Text.String() != tt.want {
				t.Errorf("text = %q, want %q", res.Text, tt.want)
			}
			if res.Verdict != tt.verdict {
				t.Errorf("verdict = %v, want %v", res.Verdict, tt.verdict)
			}
			if res.StepName != tt.step.Name() {
				t.Errorf("step name = %q, want %q", res.StepName, tt.step.Name())
			}
			if tt.verdict == VerdictModify && len(res.Changes) == 0 {
				t.Error("modify verdict should describe the change")
			}
		})
	}
}

func TestBuildPipeline(t *testing.T) {
	p, err := BuildPipeline([]string{"slugify", "strip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := p.Names()
	if len(names) != 2 || names[0] != "slugify" || names[1] != "strip" {
		t.Errorf("names = %v, want [slugify strip]", names)
	}
}

func TestBuildPipeline_Unknown(t *testing.T) {
	if _, err := BuildPipeline([]string{"strip", "uppercase"}); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestBuildPipeline_StripThenDefang(t *testing.T) {
	p, err := BuildPipeline([]string{"strip", "defang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := p.Process(context.Background(), normalized("<a href='http://evil.com'>hi</a> http://evil.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := res.FinalText.String(), "hi hXXp://evil[.]com"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

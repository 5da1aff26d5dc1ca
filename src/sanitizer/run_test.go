package sanitizer

import (
	"context"
	"strings"
	"testing"

	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
)

func TestRun_NoOperation(t *testing.T) {
	out, err := NewPipeline().Run(context.Background(), textstate.New("secret\u202etext"), ModeNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusUsage {
		t.Errorf("status = %d, want %d", out.Status, StatusUsage)
	}
	if out.Text != "" {
		t.Errorf("text = %q, want none", out.Text)
	}
	if out.Message != MsgNoOperation {
		t.Errorf("message = %q, want %q", out.Message, MsgNoOperation)
	}
}

func TestRun_DetectSafe(t *testing.T) {
	out, err := NewPipeline().Run(context.Background(), textstate.New("hello world"), ModeDetect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK {
		t.Errorf("status = %d, want %d", out.Status, StatusOK)
	}
	if out.Text != "hello world" {
		t.Errorf("text = %q, want %q", out.Text, "hello world")
	}
}

func TestRun_DetectUnsafe(t *testing.T) {
	in := "admin\u200badmin"
	out, err := NewPipeline().Run(context.Background(), textstate.New(in), ModeDetect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusDiagnostic {
		t.Errorf("status = %d, want %d", out.Status, StatusDiagnostic)
	}
	if out.Text != "" {
		t.Errorf("text = %q, unsafe input must not be emitted", out.Text)
	}
	if len(out.Report) != 1 || out.Report[0].Category != "Format" {
		t.Errorf("report = %+v, want one Format entry", out.Report)
	}
	if out.Message != MsgUnsafe {
		t.Errorf("message = %q, want %q", out.Message, MsgUnsafe)
	}
}

func TestRun_Characters(t *testing.T) {
	out, err := NewPipeline().Run(context.Background(), textstate.New("héllo"), ModeCharacters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusDiagnostic {
		t.Errorf("status = %d, want %d", out.Status, StatusDiagnostic)
	}
	if len(out.Report) != 5 {
		t.Errorf("report rows = %d, want 5", len(out.Report))
	}
	if out.Text != "" {
		t.Errorf("text = %q, want none", out.Text)
	}
}

func TestRun_RawSlug(t *testing.T) {
	out, err := NewPipeline(CensorStep{}).Run(context.Background(), textstate.New("Hello World!"), ModeRawSlug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Text != "hello-world" {
		t.Errorf("outcome = %+v, want status 0 and hello-world", out)
	}
}

func TestRun_Transform(t *testing.T) {
	p, err := BuildPipeline([]string{"strip", "defang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := p.Run(context.Background(), textstate.New("<i>café</i> http://evil.com"), ModeTransform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK {
		t.Errorf("status = %d, want %d", out.Status, StatusOK)
	}
	if want := "cafe hXXp://evil[.]com"; out.Text != want {
		t.Errorf("text = %q, want %q", out.Text, want)
	}
}

func TestRun_CleanOnly(t *testing.T) {
	out, err := NewPipeline().Run(context.Background(), textstate.New("Æneid"), ModeTransform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "AEneid" {
		t.Errorf("text = %q, want %q", out.Text, "AEneid")
	}
}

func TestRun_UnsupportedMode(t *testing.T) {
	_, err := NewPipeline().Run(context.Background(), textstate.New("x"), Mode(42))
	if err == nil || !strings.Contains(err.Error(), "Mode(42)") {
		t.Errorf("error = %v, want unsupported mode", err)
	}
}

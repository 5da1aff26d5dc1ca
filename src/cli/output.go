package cli

import (
	"fmt"
	"io"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/Easy-Infra-Ltd/eunicode/src/detect"
	"github.com/Easy-Infra-Ltd/eunicode/src/sanitizer"
)

// writeOutput sends text to every configured file, then to the clipboard
// or stdout. With the clipboard enabled, stdout only gets the text when it
// is redirected.
func writeOutput(env *Env, out config.OutputConfig, text string) error {
	for _, path := range out.Files {
		if err := env.WriteFile(path, []byte(text)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	if config.Bool(out.Clipboard) {
		if env.Clipboard == nil {
			return fmt.Errorf("writing clipboard: no clipboard available")
		}
		if err := env.Clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("writing clipboard: %w", err)
		}
		if env.StdoutIsTTY {
			return nil
		}
	}

	if _, err := io.WriteString(env.Stdout, text); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}
	return nil
}

// writeDiagnostic prints the outcome message and report to the error channel.
func writeDiagnostic(w io.Writer, out sanitizer.Outcome) error {
	if out.Message != "" {
		if _, err := fmt.Fprintf(w, "eunicode: %s\n", out.Message); err != nil {
			return err
		}
	}
	if len(out.Report) > 0 {
		return detect.RenderTable(w, out.Report)
	}
	return nil
}

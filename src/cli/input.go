package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Easy-Infra-Ltd/eunicode/src/escape"
)

// readInput picks the first non-empty source of stdin (when piped), the
// command arguments and the clipboard. Every source goes through the
// escape filter.
func readInput(env *Env, args []string, keepColors bool) (string, string, error) {
	if !env.StdinIsTTY && env.Stdin != nil {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) > 0 {
			return escape.Strip(data, keepColors), "stdin", nil
		}
	}

	if len(args) > 0 {
		return escape.Strip([]byte(strings.Join(args, " ")), keepColors), "args", nil
	}

	if env.Clipboard == nil {
		return "", "", fmt.Errorf("no input: stdin is empty, no arguments given and no clipboard available")
	}
	text, err := env.Clipboard.ReadAll()
	if err != nil {
		return "", "", fmt.Errorf("reading clipboard: %w", err)
	}
	return escape.Strip([]byte(text), keepColors), "clipboard", nil
}

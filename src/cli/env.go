package cli

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Env holds the process handles the CLI touches, so tests can replace them.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	StdinIsTTY  bool
	StdoutIsTTY bool
	StderrIsTTY bool

	Clipboard Clipboard
	WriteFile func(name string, data []byte) error
	Getenv    func(key string) string
}

func (e *Env) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// DefaultEnv returns an Env bound to the real process.
func DefaultEnv() *Env {
	return &Env{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		StdinIsTTY:  isTerminal(os.Stdin),
		StdoutIsTTY: isTerminal(os.Stdout),
		StderrIsTTY: isTerminal(os.Stderr),
		Clipboard:   systemClipboard{},
		WriteFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
		Getenv: os.Getenv,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

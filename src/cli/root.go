// Package cli implements the eunicode command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/Easy-Infra-Ltd/eunicode/src/sanitizer"
	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
	"github.com/spf13/cobra"
)

// options holds the parsed flags of the root command.
type options struct {
	clean      bool
	strip      bool
	defang     bool
	censor     bool
	slugify    bool
	rawSlugify bool
	keepColors bool
	detect     bool
	chars      bool

	outputs   []string
	clipboard bool

	configFile string
	logLevel   string
}

// app carries state shared by the commands of one invocation.
type app struct {
	env    *Env
	opts   options
	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the CLI against the real process and returns the exit status.
func Execute() int {
	return run(context.Background(), DefaultEnv(), os.Args[1:])
}

func run(ctx context.Context, env *Env, args []string) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(args)

	if err := checkSubcommandText(cmd, args); err != nil {
		fmt.Fprintf(env.Stderr, "eunicode: %v\n", err)
		return int(sanitizer.StatusUsage)
	}

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(env.Stderr, "eunicode: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}

	fmt.Fprintf(env.Stderr, "eunicode: %v\n", err)
	return int(sanitizer.StatusUsage)
}

// checkSubcommandText rejects a sanitizer flag followed by a word that
// names a subcommand, such as "--clean serve". Cobra resolves the word as
// the subcommand before it sees the text, so input starting with a
// subcommand name has to come after "--".
func checkSubcommandText(root *cobra.Command, args []string) error {
	sub, _, err := root.Find(args)
	if err != nil || sub == root {
		return nil
	}

	local := root.LocalNonPersistentFlags()
	for _, arg := range args {
		if arg == "--" || arg == sub.Name() {
			break
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[2:], "=")
		if local.Lookup(name) != nil {
			return fmt.Errorf("%s does not take --%s; to sanitize text starting with %q, put -- before it: eunicode --%s -- %s",
				sub.Name(), name, sub.Name(), name, sub.Name())
		}
	}
	return nil
}

func newRootCmd(env *Env) *cobra.Command {
	a := &app{env: env}

	cmd := &cobra.Command{
		Use:   "eunicode [flags] [--] [text...]",
		Short: "Sanitize untrusted text by removing the naughty bits",
		Long: "eunicode strips terminal escape sequences from untrusted text, normalizes it to safe ASCII,\n" +
			"and detects characters usable for spoofing or terminal injection.\n\n" +
			"Input is read from stdin when piped, otherwise from the arguments, otherwise from the clipboard.\n" +
			"Arguments after the first word of text are all input. Put -- before text that starts with\n" +
			"a flag or a subcommand name, as in: eunicode --clean -- serve",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sanitize(cmd.Context(), args)
		},
	}
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.BoolVar(&a.opts.clean, "clean", false, "normalize Unicode characters to only safe ASCII text")
	f.BoolVar(&a.opts.strip, "strip", false, "remove HTML tags")
	f.BoolVar(&a.opts.defang, "defang", false, "defang hyperlinks and e-mail addresses")
	f.BoolVar(&a.opts.censor, "censor", false, "replace profanity with placeholders")
	f.BoolVar(&a.opts.slugify, "slugify", false, "convert normalized text into a URI slug or file name")
	f.BoolVar(&a.opts.rawSlugify, "raw-slugify", false, "slugify the raw input without normalizing it first")
	f.BoolVar(&a.opts.keepColors, "keep-colors", false, "keep SGR color codes for terminal formatting")
	f.BoolVar(&a.opts.detect, "detect", false, "detect dangerous characters in the input")
	f.BoolVar(&a.opts.chars, "chars", false, "show the characters in the input with their Unicode metadata")
	f.StringArrayVar(&a.opts.outputs, "output", nil, "also write the result to `FILE` (repeatable)")
	f.BoolVar(&a.opts.clipboard, "clipboard", false, "copy the result to the clipboard (stdout only when redirected)")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.configFile, "config", "", "load settings from a JSON or YAML `FILE`")
	pf.StringVar(&a.opts.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newServeCmd(a), newVersionCmd(env))
	return cmd
}

// setup creates the logger and loads the config with flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := newLogger(a.env, a.opts.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	cfg := config.Default()
	if a.opts.configFile != "" {
		cfg, err = config.Load(a.opts.configFile)
		if err != nil {
			return err
		}
		a.logger.Debug("loaded config", "path", a.opts.configFile)
	}

	var override config.Config
	flags := cmd.Flags()
	if flags.Changed("keep-colors") {
		override.KeepColors = &a.opts.keepColors
	}
	if flags.Changed("clipboard") {
		override.Output.Clipboard = &a.opts.clipboard
	}
	if flags.Changed("output") {
		override.Output.Files = a.opts.outputs
	}
	a.cfg = config.Merge(cfg, &override)
	return nil
}

// mode resolves the selected operating mode and, for transforms, the
// operations to run. Diagnostic flags win over transformation flags.
func (a *app) mode() (sanitizer.Mode, []string) {
	switch {
	case a.opts.detect:
		return sanitizer.ModeDetect, nil
	case a.opts.chars:
		return sanitizer.ModeCharacters, nil
	case a.opts.rawSlugify:
		return sanitizer.ModeRawSlug, nil
	}

	var ops []string
	if a.opts.strip {
		ops = append(ops, config.OpStrip)
	}
	if a.opts.defang {
		ops = append(ops, config.OpDefang)
	}
	if a.opts.censor {
		ops = append(ops, config.OpCensor)
	}
	if a.opts.slugify {
		ops = append(ops, config.OpSlugify)
	}
	if a.opts.clean || len(ops) > 0 {
		return sanitizer.ModeTransform, ops
	}

	if len(a.cfg.Operations) > 0 {
		return sanitizer.ModeTransform, a.cfg.Operations
	}
	return sanitizer.ModeNone, nil
}

func (a *app) sanitize(ctx context.Context, args []string) error {
	mode, ops := a.mode()
	if mode == sanitizer.ModeNone {
		return &ExitError{Code: int(sanitizer.StatusUsage), Err: errors.New(sanitizer.MsgNoOperation)}
	}

	pipeline, err := sanitizer.BuildPipeline(ops)
	if err != nil {
		return err
	}

	keepColors := config.Bool(a.cfg.KeepColors)
	text, source, err := readInput(a.env, args, keepColors)
	if err != nil {
		return err
	}
	a.logger.Debug("read input", "source", source, "bytes", len(text), "mode", mode, "operations", pipeline.Names())

	out, err := pipeline.Run(ctx, textstate.New(text), mode)
	if err != nil {
		return err
	}

	switch out.Status {
	case sanitizer.StatusOK:
		return writeOutput(a.env, a.cfg.Output, out.Text)
	default:
		if err := writeDiagnostic(a.env.Stderr, out); err != nil {
			return err
		}
		return &ExitError{Code: int(out.Status)}
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/mcastle/jsonfmt/internal/config"
	"github.com/mcastle/jsonfmt/internal/errors"
	"github.com/mcastle/jsonfmt/internal/formatter"
	"github.com/mcastle/jsonfmt/internal/watch"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to a config file. Defaults to .jsonfmt.yml if present." short:"c" type:"path"`
	Indent      int    `help:"Spaces per indent level. Overrides the config value." default:"0"`
	Watch       bool   `help:"Watch the input file and reformat whenever it changes. Requires -i." short:"w"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Logger    log.Logger
	Config    *config.Config
	Formatter *formatter.Formatter
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonfmt"),
		kong.Description("A tool to pretty-print JSON"),
		kong.UsageOnError(),
	)

	// With no arguments and an interactive terminal, default to paste mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonfmt version %s\n", Version)
		return
	}

	ctx, err := newContext()
	if err == nil {
		err = run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonfmt --help\n")
		os.Exit(1)
	}
}

// newContext assembles the logger, configuration and formatter from the
// CLI flags. Flags override config values; config overrides defaults.
func newContext() (*Context, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if CLI.Debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg := config.NewConfig()
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewConfigError(err.Error(), err)
		}
		cfg = loaded
		level.Debug(logger).Log("msg", "loaded config", "path", path)
	}
	if CLI.Indent > 0 {
		cfg.Formatting.Indent = CLI.Indent
	}

	f := formatter.NewFormatter(
		formatter.WithIndent(cfg.Formatting.Indent),
		formatter.WithEscapeStrings(cfg.Formatting.EscapeStrings),
		formatter.WithKeyCase(cfg.Naming.KeyCase),
	)

	return &Context{Logger: logger, Config: cfg, Formatter: f}, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	if CLI.Watch {
		if CLI.Input == "" {
			return errors.NewInputError("watch mode requires an input file (-i)", errors.ErrNoInput)
		}
		return runWatch(ctx)
	}

	formatted, err := formatInput(ctx)
	if err != nil {
		return err
	}
	return writeOutput(ctx, formatted)
}

// runWatch formats the input file once, then reformats it on every change.
func runWatch(ctx *Context) error {
	reformat := func() error {
		formatted, err := ctx.Formatter.FormatFile(CLI.Input)
		if err != nil {
			return err
		}
		return writeOutput(ctx, formatted)
	}

	if err := reformat(); err != nil {
		// Log and keep watching; the file may become valid on the next save.
		level.Error(ctx.Logger).Log("msg", "initial format failed", "err", errors.UserFriendlyError(err))
	}

	return watch.Watch(context.Background(), ctx.Logger, CLI.Input, reformat)
}

// formatInput reads JSON from file or stdin and runs the pipeline
func formatInput(ctx *Context) (string, error) {
	if CLI.Input != "" {
		return ctx.Formatter.FormatFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return formatInteractiveInput(ctx)
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return ctx.Formatter.FormatString(string(jsonData))
}

// writeOutput writes the formatted text to file or stdout
func writeOutput(ctx *Context, formatted string) error {
	if ctx.Config.Formatting.TrailingNewline && !strings.HasSuffix(formatted, "\n") {
		formatted += "\n"
	}

	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(formatted), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		level.Debug(ctx.Logger).Log("msg", "wrote output", "path", CLI.Output)
		return nil
	}

	_, err := fmt.Print(formatted)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// formatInteractiveInput provides an interactive mode for users to paste
// JSON and signal completion with Ctrl+D (EOF)
func formatInteractiveInput(ctx *Context) (string, error) {
	fmt.Fprintln(os.Stderr, "jsonfmt Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	return ctx.Formatter.FormatString(jsonData)
}

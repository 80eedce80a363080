// Package cmd implements the CLI command structure for todoboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/todoboard/internal/config"
	"github.com/nibzard/todoboard/internal/form"
	"github.com/nibzard/todoboard/internal/logging"
	"github.com/nibzard/todoboard/internal/todo"
	"github.com/nibzard/todoboard/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

const defaultLogLines = 50

// Run executes the todoboard CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todoboard", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(cfg, remainingArgs)
	case "logs":
		return logsCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todoboard tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	ids, err := todo.NewIDGenerator(cfg.IDFormat)
	if err != nil {
		return err
	}

	runLog, err := logging.Open(cfg.LogDir, cfg.ProjectRoot,
		logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer runLog.Close()

	ctrl := form.New(todo.NewStore(), ids, form.WithLogger(runLog.Logger))
	return ui.RunTUI(ctx, ctrl,
		ui.WithColumns(cfg.Columns),
		ui.WithAltScreen(cfg.AltScreen),
		ui.WithLogger(runLog.Logger),
	)
}

func configCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todoboard config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an annotated example config file")
	schema := fs.Bool("schema", false, "Print the JSON Schema used to validate the config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch {
	case *example:
		_, err := fmt.Fprint(stdout, config.ExampleConfig())
		return err
	case *schema:
		_, err := fmt.Fprintln(stdout, config.Schema())
		return err
	default:
		return cfg.WriteTOML(stdout)
	}
}

func logsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todoboard logs", flag.ContinueOnError)
	lines := fs.Int("n", defaultLogLines, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.LogDir == "" {
		return fmt.Errorf("logging is disabled (log_dir is empty)")
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		return err
	}
	latest, err := logging.FindLatestLog(logDir)
	if err != nil {
		return err
	}
	if latest == "" {
		fmt.Fprintf(stdout, "No logs found in %s\n", logDir)
		return nil
	}
	return logging.TailLines(stdout, latest, *lines)
}

func versionCommand() error {
	fmt.Fprintf(stdout, "todoboard version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todoboard - an in-memory todo board for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todoboard [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui           Open the board (default command)")
	fmt.Fprintln(w, "  config        Print the effective configuration")
	fmt.Fprintln(w, "  logs          Show the latest run log")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options (use with 'config' command):")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an annotated example config file")
	fmt.Fprintln(w, "  -schema")
	fmt.Fprintln(w, "        Print the JSON Schema used to validate the config")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options (use with 'logs' command):")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all, default 50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Board keys: n create, e/enter edit, d delete, arrows/hjkl move, q quit.")
	fmt.Fprintln(w, "In the form: tab next field, enter press button, ctrl+s ok, esc cancel.")
}

// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/todoboard/internal/config"
	"github.com/nibzard/todoboard/internal/logging"
	"github.com/nibzard/todoboard/internal/ui"
)

// setup isolates the CLI from the user's config and captures its output.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{
		"TODOBOARD_COLUMNS", "TODOBOARD_ALT_SCREEN", "TODOBOARD_ID_FORMAT",
		"TODOBOARD_LOG_LEVEL", "TODOBOARD_LOG_FORMAT",
		"TODOBOARD_LOG_TIMESTAMPS", "TODOBOARD_LOG_CALLER",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("TODOBOARD_LOG_DIR", "")
	os.Unsetenv("TODOBOARD_LOG_DIR")
	chdir(t, t.TempDir())

	var out bytes.Buffer
	orig := stdout
	stdout = &out
	t.Cleanup(func() { stdout = orig })
	return &out
}

func TestRun(t *testing.T) {
	t.Run("shows help with -h flag", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"-h"}); err != nil {
			t.Fatalf("expected no error with -h, got %v", err)
		}
		if !strings.Contains(out.String(), "Usage:") {
			t.Errorf("usage not printed: %q", out.String())
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out.String(), "-columns") {
			t.Errorf("global flags missing from usage: %q", out.String())
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := out.String(); got != "todoboard version dev\n" {
			t.Errorf("version output: %q", got)
		}
	})

	t.Run("version command", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"version"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out.String(), "dev") {
			t.Errorf("version output: %q", out.String())
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		setup(t)
		err := Run(context.Background(), []string{"unknown-command"})
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		setup(t)
		err := Run(context.Background(), []string{"-id-format", "serial", "config"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "id_format") {
			t.Errorf("error should name the key: %v", err)
		}
	})

	t.Run("tui needs a terminal", func(t *testing.T) {
		if ui.IsTTY(os.Stdout) {
			t.Skip("stdout is a terminal")
		}
		setup(t)
		err := Run(context.Background(), []string{"-log-dir", ""})
		if err == nil || !strings.Contains(err.Error(), "TTY") {
			t.Errorf("expected TTY error, got %v", err)
		}
	})

	t.Run("tui rejects extra arguments", func(t *testing.T) {
		setup(t)
		err := Run(context.Background(), []string{"tui", "extra"})
		if err == nil || !strings.Contains(err.Error(), "unexpected arguments") {
			t.Errorf("expected argument error, got %v", err)
		}
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("effective config reflects flags", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"-columns", "3", "-id-format", "ulid", "config"}); err != nil {
			t.Fatalf("config: %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "columns = 3") || !strings.Contains(got, `id_format = "ulid"`) {
			t.Errorf("config output: %q", got)
		}
	})

	t.Run("example", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"config", "-example"}); err != nil {
			t.Fatalf("config -example: %v", err)
		}
		if out.String() != config.ExampleConfig() {
			t.Errorf("example output differs")
		}
	})

	t.Run("schema", func(t *testing.T) {
		out := setup(t)
		if err := Run(context.Background(), []string{"config", "-schema"}); err != nil {
			t.Fatalf("config -schema: %v", err)
		}
		if !strings.Contains(out.String(), `"id_format"`) {
			t.Errorf("schema output: %q", out.String())
		}
	})
}

func TestLogsCommand(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		setup(t)
		err := Run(context.Background(), []string{"-log-dir", "", "logs"})
		if err == nil || !strings.Contains(err.Error(), "disabled") {
			t.Errorf("expected disabled error, got %v", err)
		}
	})

	t.Run("no logs yet", func(t *testing.T) {
		out := setup(t)
		base := t.TempDir()
		if err := Run(context.Background(), []string{"-log-dir", base, "logs"}); err != nil {
			t.Fatalf("logs: %v", err)
		}
		if !strings.Contains(out.String(), "No logs found") {
			t.Errorf("output: %q", out.String())
		}
	})

	t.Run("tails latest log", func(t *testing.T) {
		out := setup(t)
		base := t.TempDir()
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}

		runLog, err := logging.Open(base, wd, logging.OptionsFromConfig("debug", "logfmt", false, false))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		runLog.Logger.Info("board mounted")
		runLog.Logger.Debug("task created", "task_id", "abc")
		runLog.Close()

		if err := Run(context.Background(), []string{"-log-dir", base, "logs", "-n", "1"}); err != nil {
			t.Fatalf("logs: %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "task_id=abc") {
			t.Errorf("latest line missing: %q", got)
		}
		if strings.Contains(got, "board mounted") {
			t.Errorf("-n 1 printed more than one line: %q", got)
		}
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

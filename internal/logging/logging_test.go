package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"", log.InfoLevel},
		{"nonsense", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		in   string
		want log.Formatter
	}{
		{"text", log.TextFormatter},
		{"json", log.JSONFormatter},
		{"LOGFMT", log.LogfmtFormatter},
		{"", log.TextFormatter},
	}
	for _, tt := range tests {
		if got := ParseFormatter(tt.in); got != tt.want {
			t.Errorf("ParseFormatter(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRespectsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, OptionsFromConfig("warn", "json", false, false))

	logger.Info("hidden")
	logger.Warn("shown", "task_id", "t1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"task_id":"t1"`) {
		t.Errorf("unexpected json output: %q", out)
	}
}

func TestOpenWithoutDirDiscards(t *testing.T) {
	rl, err := Open("", t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rl.Close()

	if rl.LogPath != "" {
		t.Errorf("LogPath: got %q, want empty", rl.LogPath)
	}
	rl.Logger.Error("goes nowhere")
}

func TestOpenCreatesRunFile(t *testing.T) {
	base := t.TempDir()
	work := t.TempDir()

	rl, err := Open(base, work, OptionsFromConfig("debug", "logfmt", false, false))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rl.Logger.Debug("board mounted", "columns", 4)
	if err := rl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !strings.HasPrefix(rl.LogPath, base) {
		t.Errorf("LogPath %q not under %q", rl.LogPath, base)
	}
	if filepath.Ext(rl.LogPath) != ".log" {
		t.Errorf("LogPath extension: %q", rl.LogPath)
	}
	data, err := os.ReadFile(rl.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "board mounted") || !strings.Contains(string(data), "columns=4") {
		t.Errorf("log content: %q", data)
	}

	dir, err := FindLogDir(base, work)
	if err != nil {
		t.Fatalf("FindLogDir: %v", err)
	}
	if dir != rl.Dir {
		t.Errorf("FindLogDir: got %q, want %q", dir, rl.Dir)
	}
}

func TestFindLogDirEmptyBase(t *testing.T) {
	if _, err := FindLogDir("", "."); err == nil {
		t.Error("expected error for empty base dir")
	}
}

func TestFindLatestLog(t *testing.T) {
	dir := t.TempDir()

	if got, err := FindLatestLog(filepath.Join(dir, "missing")); err != nil || got != "" {
		t.Errorf("missing dir: got (%q, %v)", got, err)
	}

	old := filepath.Join(dir, "20240101-000000-1.log")
	newer := filepath.Join(dir, "20240102-000000-2.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, newer, other} {
		if err := os.WriteFile(p, []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	now := time.Now()
	os.Chtimes(old, now.Add(-time.Hour), now.Add(-time.Hour))
	os.Chtimes(newer, now, now)
	os.Chtimes(other, now.Add(time.Hour), now.Add(time.Hour))

	got, err := FindLatestLog(dir)
	if err != nil {
		t.Fatalf("FindLatestLog: %v", err)
	}
	if got != newer {
		t.Errorf("got %q, want %q", got, newer)
	}
}

func TestTailLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		n    int
		want string
	}{
		{0, "a\nb\nc\nd\n"},
		{2, "c\nd\n"},
		{10, "a\nb\nc\nd\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := TailLines(&buf, path, tt.n); err != nil {
			t.Fatalf("TailLines(%d): %v", tt.n, err)
		}
		if buf.String() != tt.want {
			t.Errorf("TailLines(%d): got %q, want %q", tt.n, buf.String(), tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my project", "my_project"},
		{"a//b", "a_b"},
		{"__", "project"},
		{"", "project"},
		{"ok.name-1", "ok.name-1"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

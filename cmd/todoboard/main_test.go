package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		err     error
		want    int
		wantOut string
	}{
		{"success", context.Background(), nil, 0, ""},
		{"success after signal", cancelled, nil, 0, ""},
		{"error", context.Background(), errors.New("boom"), 1, "Error: boom"},
		{"interrupted", cancelled, context.Canceled, 130, "Interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if got := exitCode(tt.ctx, tt.err, &out); got != tt.want {
				t.Errorf("exitCode: got %d, want %d", got, tt.want)
			}
			if tt.wantOut == "" && out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

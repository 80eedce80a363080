// Command todoboard is the CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/todoboard/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[1:])
	code := exitCode(ctx, err, os.Stderr)
	stop()
	os.Exit(code)
}

// exitCode reports err on w and maps it to the process exit status:
// 0 on success, 130 when ctx was cancelled by a signal, 1 otherwise.
func exitCode(ctx context.Context, err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		fmt.Fprintf(w, "\nInterrupted\n")
		return 130
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

// Command server runs the weardict HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yos-x/weardict/internal/app"
)

func main() {
	os.Exit(run(context.Background(), app.Run))
}

// run executes start under a signal-aware context and turns its error into
// an exit code. The signal handler is released before run returns.
func run(parent context.Context, start func(context.Context) error) int {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := start(ctx); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

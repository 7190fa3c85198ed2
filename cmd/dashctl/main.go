// Command dashctl runs the dashboard's rates pipeline from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&commandConfig{}).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

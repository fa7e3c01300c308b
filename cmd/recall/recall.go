package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tableflip.dev/recall/pkg/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra has already printed the error.
	if err := commands.New().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// Command marbles computes and draws marble diagrams of reactive operators.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoobzio/marbles/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	cliadapter "github.com/example/ticketdesk/internal/adapters/cli"
	"github.com/example/ticketdesk/internal/cli"
	"github.com/example/ticketdesk/internal/wire"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if closeErr := wire.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}

	if err != nil {
		// The panel has already shown its own message
		if !errors.Is(err, cliadapter.ErrActionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

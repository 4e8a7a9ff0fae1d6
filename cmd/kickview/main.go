package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, c := newRootCmd()
	err := root.ExecuteContext(ctx)
	c.teardown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kickview: %v\n", err)
		stop()
		os.Exit(1)
	}
}

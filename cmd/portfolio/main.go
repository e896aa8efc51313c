package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// @title           Portfolio Site API
// @version         1.0
// @description     JSON endpoints of the portfolio site: contact form, theme preference and health.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

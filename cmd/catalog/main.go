package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	catalogcmd "github.com/louisbranch/portfolio/internal/cmd/catalog"
	"github.com/louisbranch/portfolio/internal/platform/config"
)

func main() {
	cfg, err := catalogcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := catalogcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

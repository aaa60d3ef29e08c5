package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/thikana/internal/app"
	"github.com/Adda-Baaj/thikana/internal/config"
	"github.com/Adda-Baaj/thikana/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "thikana failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Println(app.Usage)
		return nil
	}
	query, found := app.QueryFromArgs(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("thikana starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	finder, err := app.NewFinder(cfg, logger.New(sugar), sugar, os.Stdout, os.Stderr)
	if err != nil {
		logger.ErrorObj("failed to initialize finder", "error", err)
		return err
	}

	if !found {
		logger.WarnObj("missing -q flag", "args", args)
		return finder.ReportMissingQuery()
	}

	logger.DebugObj("search requested", "query", query)
	if err := finder.Run(ctx, query); err != nil {
		return fmt.Errorf("finder run: %w", err)
	}

	return nil
}

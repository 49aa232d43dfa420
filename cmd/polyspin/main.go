// Package main is the entry point for polyspin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/polyspin/internal/app"
	"github.com/Faultbox/polyspin/internal/config"
	"github.com/Faultbox/polyspin/internal/engine/window"
	"github.com/Faultbox/polyspin/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("config written to %s\n", path)
		return
	}

	if err := logger.Init(logger.DefaultOptions(cfg.Logging.Level, cfg.Logging.LogFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("=== polyspin ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	a, err := app.New(cfg)
	if err != nil {
		fatal("Could not initialise graphics", err)
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		fatal("Rendering failed", err)
		return 1
	}

	logger.Info("closed normally")
	return 0
}

// fatal logs err and blocks on an error dialog until the user dismisses it.
func fatal(title string, err error) {
	logger.Error(title, zap.Error(err))
	window.ShowError(nil, title, err.Error())
}

package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"tridemo/internal/app"
	"tridemo/internal/config"
	"tridemo/internal/logging"
)

func init() {
	// GLFW and GL must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, cfgErr := config.Load()
	log := logging.New(cfg.LogLevel)
	logging.SetLogger(log)
	if cfgErr != nil {
		log.Warn("ignoring invalid configuration", "err", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunDesktop(ctx, cfg); err != nil {
		log.Error("tridemo failed", "err", err)
		stop()
		os.Exit(1)
	}
}

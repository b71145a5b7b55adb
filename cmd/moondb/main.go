package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"moondb/internal/cli"
	"moondb/internal/config"
	"moondb/internal/logging"
	"moondb/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; values already present in the environment win.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays a clean interaction surface.
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil))).
		With("session", uuid.NewString())

	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info(ctx, "store ready", "dev", cfg.Dev)

	app := cli.NewApp(st.Accounts, st.Missions, os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session aborted", "error", err.Error())
		return err
	}

	logger.Info(ctx, "session ended")
	return nil
}

package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/briangreenhill/ftracker/internal/activity"
	"github.com/briangreenhill/ftracker/internal/config"
)

func main() {
	cfg := config.Load()

	w := os.Stdout
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Error("Error opening database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := activity.Migrate(ctx, db); err != nil {
		logger.Error("Error creating table", slog.Any("error", err))
		os.Exit(1)
	}

	activityService := activity.NewService(db, logger)

	if err := run(ctx, w, os.Args[1:], cfg, logger, activityService); err != nil {
		logger.Error("Error running ftracker", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, args []string, cfg config.Config, logger *slog.Logger, activityService *activity.Service) error {
	cli := activity.NewCLI(w, logger, activityService, cfg, args)

	if err := cli.Run(ctx); err != nil {
		return err
	}

	return nil
}

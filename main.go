package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"taskmanager/config"
	"taskmanager/handlers"
	"taskmanager/store"
)

func main() {
	godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx := context.Background()

	client, err := config.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Database)
	if err := config.EnsureIndexes(ctx, db); err != nil {
		log.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	users := store.NewMongoUserStore(db)
	tasks := store.NewMongoTaskStore(db)

	router := handlers.NewRouter(cfg, users, tasks, log)

	log.Info("server starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dguiney/hotel-api/internal/config"
	"github.com/dguiney/hotel-api/internal/infrastructure/observability"
	"github.com/dguiney/hotel-api/internal/server"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connect failed")
	}

	app := server.New(cfg, client, logger)
	if err := app.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

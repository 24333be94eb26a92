package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zenlead/studio/config"
	dbmongo "github.com/zenlead/studio/db/mongo"
	"github.com/zenlead/studio/server"
	"github.com/zenlead/studio/settings"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the model-settings HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := dbmongo.NewMongoRepository()
			defer dbmongo.GetMongoClient().Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			indexes := []mongo.IndexModel{{
				Keys:    bson.D{{Key: "model_slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			}}
			if err := repo.EnsureIndexes(ctx, settings.Collection, indexes); err != nil {
				return err
			}

			service := settings.NewService(settings.NewStore(repo))
			return server.New(config.LoadServerConfig(), service).Run(ctx)
		},
	}
}

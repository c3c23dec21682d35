// Command seed replaces the clientes, productos and pedidos collections
// with the sample dataset.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"comerciotech/internal/config"
	"comerciotech/internal/database"
	"comerciotech/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.ConfigureLogger(cfg)

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI, cfg.DBTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	db := client.Database(cfg.DBName)
	summary, err := seed.Import(ctx, database.NewMongoStores(client, db, cfg.DBTimeout))
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to recreate indexes")
	}

	log.Info().
		Str("database", db.Name()).
		Int64("clientes", summary.Customers).
		Int64("productos", summary.Products).
		Int64("pedidos", summary.Orders).
		Int64("total", summary.Total()).
		Msg("import completed")
}

package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the unique business keys and the
// customer reference lookup. Failures are collected, not fatal: legacy data
// with duplicates must not keep the API from starting.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return errors.Join(
		EnsureCustomerIndexes(ctx, db),
		EnsureOrderIndexes(ctx, db),
	)
}

func EnsureCustomerIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	indexes := db.Collection(CustomersCollection).Indexes()

	identifierIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "identificador", Value: 1}},
		Options: options.Index().
			SetName("identificador_unique").
			SetUnique(true),
	}

	log.Debug().Str("index", "identificador_unique").Msg("creating customer index")
	if _, err := indexes.CreateOne(ctx, identifierIndex); err != nil {
		log.Warn().Err(err).Str("index", "identificador_unique").Msg("customer index not created")
		return err
	}
	return nil
}

func EnsureOrderIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	indexes := db.Collection(OrdersCollection).Indexes()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "codigo_pedido", Value: 1}},
			Options: options.Index().
				SetName("codigo_pedido_unique").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "clienteId", Value: 1}},
			Options: options.Index().SetName("clienteId_index"),
		},
	}

	log.Debug().Strs("index", []string{"codigo_pedido_unique", "clienteId_index"}).Msg("creating order indexes")
	if _, err := indexes.CreateMany(ctx, models); err != nil {
		log.Warn().Err(err).Msg("order indexes not created")
		return err
	}
	return nil
}

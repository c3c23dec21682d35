// Package seed loads the sample ComercioTech dataset: seven customers,
// thirteen products and six orders with fixed ids.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"comerciotech/internal/database"
	"comerciotech/internal/models"
)

// Summary reports how many documents each collection holds after Import.
type Summary struct {
	Customers int64
	Products  int64
	Orders    int64
}

func (s Summary) Total() int64 { return s.Customers + s.Products + s.Orders }

// Import drops the three collections and inserts the sample dataset. With
// MongoDB, dropping also removes indexes; callers recreate them afterwards.
func Import(ctx context.Context, stores database.Stores) (Summary, error) {
	log.Info().Msg("dropping collections")
	for _, drop := range []func(context.Context) error{
		stores.Customers.Drop,
		stores.Products.Drop,
		stores.Orders.Drop,
	} {
		if err := drop(ctx); err != nil {
			return Summary{}, fmt.Errorf("drop: %w", err)
		}
	}

	if err := insertAll(ctx, stores.Customers, Customers()); err != nil {
		return Summary{}, err
	}
	if err := insertAll(ctx, stores.Products, Products()); err != nil {
		return Summary{}, err
	}
	if err := insertAll(ctx, stores.Orders, Orders()); err != nil {
		return Summary{}, err
	}

	var summary Summary
	var err error
	if summary.Customers, err = stores.Customers.Count(ctx, bson.M{}); err != nil {
		return Summary{}, err
	}
	if summary.Products, err = stores.Products.Count(ctx, bson.M{}); err != nil {
		return Summary{}, err
	}
	if summary.Orders, err = stores.Orders.Count(ctx, bson.M{}); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func insertAll[T any](ctx context.Context, coll database.Collection[T], docs []T) error {
	for _, doc := range docs {
		if _, err := coll.Insert(ctx, doc); err != nil {
			return fmt.Errorf("insert into %s: %w", coll.Name(), err)
		}
	}
	log.Info().Str("collection", coll.Name()).Int("count", len(docs)).Msg("imported")
	return nil
}

func oid(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func item(productID, name string, quantity int, unitPrice, lineTotal float64) models.OrderItem {
	id := oid(productID)
	return models.OrderItem{
		ProductID: &id,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: lineTotal,
	}
}

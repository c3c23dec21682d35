package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"comerciotech/internal/apierror"
	"comerciotech/internal/database"
	"comerciotech/internal/models"
)

// SampleSize is how many documents per collection Stats returns.
const SampleSize = 3

type CollectionStats[T any] struct {
	Count  int64 `json:"count"`
	Sample []T   `json:"sample"`
}

type Stats struct {
	Customers CollectionStats[models.Customer] `json:"clientes"`
	Products  CollectionStats[models.Product]  `json:"productos"`
	Orders    CollectionStats[models.Order]    `json:"pedidos"`
}

func (s Stats) TotalDocuments() int64 {
	return s.Customers.Count + s.Products.Count + s.Orders.Count
}

// Stats reports the size of each collection with a small sample of its
// documents.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.Customers, err = collectionStats(ctx, s.customers); err != nil {
		return Stats{}, err
	}
	if stats.Products, err = collectionStats(ctx, s.products); err != nil {
		return Stats{}, err
	}
	if stats.Orders, err = collectionStats(ctx, s.orders); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func collectionStats[T any](ctx context.Context, coll database.Collection[T]) (CollectionStats[T], error) {
	count, err := coll.Count(ctx, bson.M{})
	if err != nil {
		return CollectionStats[T]{}, apierror.Internal(err)
	}
	sample, err := coll.Find(ctx, SampleSize)
	if err != nil {
		return CollectionStats[T]{}, apierror.Internal(err)
	}
	return CollectionStats[T]{Count: count, Sample: sample}, nil
}

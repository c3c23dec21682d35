package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CustomersCollection = "clientes"
	ProductsCollection  = "productos"
	OrdersCollection    = "pedidos"
)

var (
	// ErrNotFound is returned when no document matches an id.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Collection is the document store contract the service depends on. Filters
// are top level equality matches; an empty filter matches every document.
type Collection[T any] interface {
	Name() string
	// Find returns documents in natural order. limit <= 0 means all.
	Find(ctx context.Context, limit int64) ([]T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Insert(ctx context.Context, doc T) (primitive.ObjectID, error)
	// UpdateByID applies set to the document and returns it after the update.
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// Drop removes every document in the collection.
	Drop(ctx context.Context) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

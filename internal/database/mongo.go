package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client and checks the primary is reachable.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoCollection implements Collection on a MongoDB collection. Every call
// runs under its own timeout derived from the caller's context.
type MongoCollection[T any] struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoCollection[T any](db *mongo.Database, name string, timeout time.Duration) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name), timeout: timeout}
}

func (m *MongoCollection[T]) Name() string { return m.coll.Name() }

func (m *MongoCollection[T]) Find(ctx context.Context, limit int64) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *MongoCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var doc T
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	return doc, err
}

func (m *MongoCollection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	return m.coll.CountDocuments(ctx, filter)
}

func (m *MongoCollection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *MongoCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var updated T
	err := m.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return updated, ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return updated, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return updated, err
}

func (m *MongoCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCollection[T]) Drop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	return m.coll.Drop(ctx)
}

// MongoPinger pings the primary of a connected client.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return p.Client.Ping(checkCtx, readpref.Primary())
}

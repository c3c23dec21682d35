package database

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-process Collection. Documents are kept in their
// BSON form, so they encode and decode exactly as they would through MongoDB.
// Fields listed as unique behave like a unique index on that field.
type MemoryCollection[T any] struct {
	name   string
	unique []string

	mu   sync.RWMutex
	docs []bson.M
}

func NewMemoryCollection[T any](name string, uniqueFields ...string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name, unique: uniqueFields}
}

func (m *MemoryCollection[T]) Name() string { return m.name }

func (m *MemoryCollection[T]) Find(ctx context.Context, limit int64) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := int64(len(m.docs))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for _, raw := range m.docs[:n] {
		doc, err := decodeDocument[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (m *MemoryCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return decodeDocument[T](m.docs[i])
}

func (m *MemoryCollection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	normalized, err := normalize(filter)
	if err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, raw := range m.docs {
		if matches(raw, normalized) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryCollection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	raw, err := normalize(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := raw["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		raw["_id"] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(id) >= 0 {
		return primitive.NilObjectID, fmt.Errorf("%w: _id %s", ErrDuplicateKey, id.Hex())
	}
	if err := m.checkUnique(raw, -1); err != nil {
		return primitive.NilObjectID, err
	}
	m.docs = append(m.docs, raw)
	return id, nil
}

func (m *MemoryCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	changes, err := normalize(set)
	if err != nil {
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	updated := make(bson.M, len(m.docs[i])+len(changes))
	for k, v := range m.docs[i] {
		updated[k] = v
	}
	for k, v := range changes {
		updated[k] = v
	}
	if err := m.checkUnique(updated, i); err != nil {
		return zero, err
	}
	m.docs[i] = updated
	return decodeDocument[T](updated)
}

func (m *MemoryCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return nil
}

func (m *MemoryCollection[T]) Drop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = nil
	return nil
}

// Ping always succeeds; the collection lives in process memory.
func (m *MemoryCollection[T]) Ping(context.Context) error { return nil }

func (m *MemoryCollection[T]) indexOf(id primitive.ObjectID) int {
	for i, raw := range m.docs {
		if current, ok := raw["_id"].(primitive.ObjectID); ok && current == id {
			return i
		}
	}
	return -1
}

// checkUnique must be called with the write lock held. skip is the index of
// the document being replaced, or -1 for an insert.
func (m *MemoryCollection[T]) checkUnique(raw bson.M, skip int) error {
	for _, field := range m.unique {
		value, ok := raw[field]
		if !ok || value == nil {
			continue
		}
		for i, other := range m.docs {
			if i == skip {
				continue
			}
			if reflect.DeepEqual(other[field], value) {
				return fmt.Errorf("%w: %s %v", ErrDuplicateKey, field, value)
			}
		}
	}
	return nil
}

func matches(raw, filter bson.M) bool {
	for k, want := range filter {
		got, ok := raw[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// normalize round-trips v through BSON so stored values and filter values
// share the same Go representation.
func normalize(v any) (bson.M, error) {
	if m, ok := v.(bson.M); v == nil || (ok && m == nil) {
		return bson.M{}, nil
	}
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeDocument[T any](raw bson.M) (T, error) {
	var doc T
	data, err := bson.Marshal(raw)
	if err != nil {
		return doc, err
	}
	err = bson.Unmarshal(data, &doc)
	return doc, err
}

// Package service holds the business rules for customers, products and
// orders: payload validation, existence and uniqueness checks, and the
// referential guard on customer deletion. It knows nothing about HTTP.
package service

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comerciotech/internal/apierror"
	"comerciotech/internal/database"
	"comerciotech/internal/models"
)

// Service is built once at startup and shared by every request. Its only
// state is the injected store handles; check-then-write sequences are not
// atomic and rely on the store's unique indexes to catch races.
type Service struct {
	customers database.Collection[models.Customer]
	products  database.Collection[models.Product]
	orders    database.Collection[models.Order]
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(stores database.Stores, opts ...Option) *Service {
	s := &Service{
		customers: stores.Customers,
		products:  stores.Products,
		orders:    stores.Orders,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type entityMessages struct {
	invalidID string
	notFound  string
	deleted   string
	duplicate string
}

var (
	customerMessages = entityMessages{
		invalidID: msgInvalidCustomer,
		notFound:  "Cliente no encontrado",
		deleted:   "Cliente eliminado exitosamente",
		duplicate: "Ya existe un cliente con ese identificador",
	}
	productMessages = entityMessages{
		invalidID: msgInvalidProduct,
		notFound:  "Producto no encontrado",
		deleted:   "Producto eliminado exitosamente",
	}
	orderMessages = entityMessages{
		invalidID: "ID de pedido inválido",
		notFound:  "Pedido no encontrado",
		deleted:   "Pedido eliminado exitosamente",
		duplicate: "Ya existe un pedido con ese código",
	}
)

func parseID(raw string, msgs entityMessages) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apierror.Validation(msgs.invalidID)
	}
	return id, nil
}

// storeError classifies an error coming back from a collection call.
func storeError(err error, msgs entityMessages) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return apierror.NotFound(msgs.notFound)
	case errors.Is(err, database.ErrDuplicateKey) && msgs.duplicate != "":
		return apierror.Validation(msgs.duplicate)
	}
	return apierror.Internal(err)
}

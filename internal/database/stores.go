package database

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"comerciotech/internal/models"
)

// Stores bundles the three collections the API works with.
type Stores struct {
	Customers Collection[models.Customer]
	Products  Collection[models.Product]
	Orders    Collection[models.Order]
	Pinger    Pinger
}

func NewMongoStores(client *mongo.Client, db *mongo.Database, timeout time.Duration) Stores {
	return Stores{
		Customers: NewMongoCollection[models.Customer](db, CustomersCollection, timeout),
		Products:  NewMongoCollection[models.Product](db, ProductsCollection, timeout),
		Orders:    NewMongoCollection[models.Order](db, OrdersCollection, timeout),
		Pinger:    MongoPinger{Client: client},
	}
}

// NewMemoryStores returns empty in-process collections with the same unique
// keys as the MongoDB indexes.
func NewMemoryStores() Stores {
	customers := NewMemoryCollection[models.Customer](CustomersCollection, "identificador")
	return Stores{
		Customers: customers,
		Products:  NewMemoryCollection[models.Product](ProductsCollection),
		Orders:    NewMemoryCollection[models.Order](OrdersCollection, "codigo_pedido"),
		Pinger:    customers,
	}
}

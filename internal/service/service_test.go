package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"comerciotech/internal/apierror"
	"comerciotech/internal/database"
	"comerciotech/internal/models"
)

// countingCollection records how many store calls reach the wrapped
// collection.
type countingCollection[T any] struct {
	database.Collection[T]
	calls *atomic.Int64
}

func (c countingCollection[T]) Find(ctx context.Context, limit int64) ([]T, error) {
	c.calls.Add(1)
	return c.Collection.Find(ctx, limit)
}

func (c countingCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	c.calls.Add(1)
	return c.Collection.FindByID(ctx, id)
}

func (c countingCollection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	c.calls.Add(1)
	return c.Collection.Count(ctx, filter)
}

func (c countingCollection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	c.calls.Add(1)
	return c.Collection.Insert(ctx, doc)
}

func (c countingCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	c.calls.Add(1)
	return c.Collection.UpdateByID(ctx, id, set)
}

func (c countingCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	c.calls.Add(1)
	return c.Collection.DeleteByID(ctx, id)
}

type fixture struct {
	svc    *Service
	stores database.Stores
	calls  *atomic.Int64
}

var fixedNow = time.Date(2025, 7, 17, 15, 4, 5, 123456789, time.UTC)

func newFixture(t *testing.T) fixture {
	t.Helper()
	stores := database.NewMemoryStores()
	calls := &atomic.Int64{}
	counted := database.Stores{
		Customers: countingCollection[models.Customer]{Collection: stores.Customers, calls: calls},
		Products:  countingCollection[models.Product]{Collection: stores.Products, calls: calls},
		Orders:    countingCollection[models.Order]{Collection: stores.Orders, calls: calls},
		Pinger:    stores.Pinger,
	}
	svc := New(counted, WithClock(func() time.Time { return fixedNow }))
	return fixture{svc: svc, stores: stores, calls: calls}
}

func ptr[T any](v T) *T { return &v }

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msg, ve.Message)
}

func requireNotFound(t *testing.T, err error, msg string) {
	t.Helper()
	var nf *apierror.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, msg, nf.Message)
}

func (f fixture) createCustomer(t *testing.T, identifier string) models.Customer {
	t.Helper()
	customer, err := f.svc.CreateCustomer(context.Background(), models.CustomerInput{
		FirstName:  "Luan",
		LastName:   "Romero Soto",
		Identifier: identifier,
		Address:    &models.Address{Street: "Av. Providencia", Number: "1234", City: "Santiago"},
	})
	require.NoError(t, err)
	return customer
}

func (f fixture) createOrder(t *testing.T, customerID primitive.ObjectID, code string) models.Order {
	t.Helper()
	order, err := f.svc.CreateOrder(context.Background(), models.OrderInput{
		CustomerID: customerID.Hex(),
		Code:       code,
		Items: []models.OrderItemInput{
			{Name: "iPhone 14 Pro", Quantity: 1, UnitPrice: 850000, LineTotal: ptr(850000.0)},
		},
		PaymentMethod: "Tarjeta de Crédito",
	})
	require.NoError(t, err)
	return order
}

func TestCreateCustomerRequiresFieldsInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCustomer(ctx, models.CustomerInput{Identifier: "C100"})
	requireValidation(t, err, "El campo nombre es requerido")

	_, err = f.svc.CreateCustomer(ctx, models.CustomerInput{FirstName: "Ana"})
	requireValidation(t, err, "El campo apellidos es requerido")

	_, err = f.svc.CreateCustomer(ctx, models.CustomerInput{FirstName: "Ana", LastName: "Díaz"})
	requireValidation(t, err, "El campo identificador es requerido")

	count, err := f.stores.Customers.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, f.calls.Load())
}

func TestCreateCustomerDefaultsRegistrationDate(t *testing.T) {
	f := newFixture(t)

	customer := f.createCustomer(t, "C001")
	assert.False(t, customer.ID.IsZero())
	assert.Equal(t, "2025-07-17", customer.RegisteredAt)

	got, err := f.svc.GetCustomer(context.Background(), customer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, customer, got)
}

func TestCreateCustomerRejectsBadRegistrationDate(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateCustomer(context.Background(), models.CustomerInput{
		FirstName: "Ana", LastName: "Díaz", Identifier: "C100", RegisteredAt: ptr("17/07/2025"),
	})
	requireValidation(t, err, "El campo fechaRegistro debe tener el formato YYYY-MM-DD")
}

func TestCreateCustomerDuplicateIdentifier(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createCustomer(t, "C001")
	_, err := f.svc.CreateCustomer(ctx, models.CustomerInput{FirstName: "Otro", LastName: "Cliente", Identifier: "C001"})
	requireValidation(t, err, "Ya existe un cliente con ese identificador")

	count, err := f.stores.Customers.Count(ctx, bson.M{"identificador": "C001"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.createCustomer(t, "C001")
	f.createCustomer(t, "C002")

	_, err := f.svc.UpdateCustomer(ctx, first.ID.Hex(), models.CustomerPatch{})
	requireValidation(t, err, msgNoData)

	_, err = f.svc.UpdateCustomer(ctx, first.ID.Hex(), models.CustomerPatch{Identifier: ptr("C002")})
	requireValidation(t, err, "Ya existe un cliente con ese identificador")

	_, err = f.svc.UpdateCustomer(ctx, first.ID.Hex(), models.CustomerPatch{FirstName: ptr("")})
	requireValidation(t, err, "El campo nombre no puede estar vacío")

	// Keeping the same identifier is not a conflict.
	updated, err := f.svc.UpdateCustomer(ctx, first.ID.Hex(), models.CustomerPatch{
		Identifier: ptr("C001"),
		FirstName:  ptr("Luana"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Luana", updated.FirstName)
	assert.Equal(t, first.LastName, updated.LastName)
	assert.Equal(t, first.Address, updated.Address)

	_, err = f.svc.UpdateCustomer(ctx, primitive.NewObjectID().Hex(), models.CustomerPatch{FirstName: ptr("x")})
	requireNotFound(t, err, "Cliente no encontrado")
}

func TestDeleteCustomerBlockedWhileReferenced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	referenced := f.createCustomer(t, "C001")
	free := f.createCustomer(t, "C002")
	f.createOrder(t, referenced.ID, "P001")

	_, err := f.svc.DeleteCustomer(ctx, referenced.ID.Hex())
	requireValidation(t, err, "No se puede eliminar el cliente porque tiene pedidos asociados")
	_, err = f.svc.GetCustomer(ctx, referenced.ID.Hex())
	require.NoError(t, err)

	msg, err := f.svc.DeleteCustomer(ctx, free.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Cliente eliminado exitosamente", msg)
	_, err = f.svc.GetCustomer(ctx, free.ID.Hex())
	requireNotFound(t, err, "Cliente no encontrado")

	_, err = f.svc.DeleteCustomer(ctx, free.ID.Hex())
	requireNotFound(t, err, "Cliente no encontrado")
}

func TestCreateProductNumericRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := func() models.ProductInput {
		return models.ProductInput{
			Name: ptr("PlayStation 5"), Price: ptr(550000.0), Stock: ptr(5), Category: ptr("Consolas"),
		}
	}

	zeroPrice := base()
	zeroPrice.Price = ptr(0.0)
	_, err := f.svc.CreateProduct(ctx, zeroPrice)
	requireValidation(t, err, msgInvalidPrice)

	negativeStock := base()
	negativeStock.Stock = ptr(-1)
	_, err = f.svc.CreateProduct(ctx, negativeStock)
	requireValidation(t, err, msgInvalidStock)

	missing := base()
	missing.Stock = nil
	missing.Price = ptr(-3.0)
	_, err = f.svc.CreateProduct(ctx, missing)
	requireValidation(t, err, "El campo stock es requerido")

	zeroStock := base()
	zeroStock.Stock = ptr(0)
	product, err := f.svc.CreateProduct(ctx, zeroStock)
	require.NoError(t, err)
	assert.Equal(t, 550000.0, product.Price)
	assert.Equal(t, 0, product.Stock)
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	product, err := f.svc.CreateProduct(ctx, models.ProductInput{
		Name: ptr("Nintendo Switch OLED"), Price: ptr(350000.0), Stock: ptr(8), Category: ptr("Consolas"),
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateProduct(ctx, product.ID.Hex(), models.ProductPatch{Price: ptr(-1.0)})
	requireValidation(t, err, msgInvalidPrice)

	updated, err := f.svc.UpdateProduct(ctx, product.ID.Hex(), models.ProductPatch{Stock: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, 350000.0, updated.Price)

	_, err = f.svc.UpdateProduct(ctx, primitive.NewObjectID().Hex(), models.ProductPatch{Stock: ptr(3)})
	requireNotFound(t, err, "Producto no encontrado")

	msg, err := f.svc.DeleteProduct(ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Producto eliminado exitosamente", msg)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: primitive.NewObjectID().Hex(),
		Code:       "P001",
		Items:      []models.OrderItemInput{{Name: "iPhone 14 Pro", Quantity: 1}},
	})
	requireNotFound(t, err, "Cliente no encontrado")

	count, err := f.stores.Orders.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateOrderShapeChecksRunBeforeStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: primitive.NewObjectID().Hex(),
		Code:       "P001",
		Items:      []models.OrderItemInput{},
	})
	requireValidation(t, err, msgNoItems)

	_, err = f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: "no-es-un-id",
		Code:       "P001",
		Items:      []models.OrderItemInput{{Name: "x"}},
	})
	requireValidation(t, err, msgInvalidCustomer)

	_, err = f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: primitive.NewObjectID().Hex(),
		Code:       "P001",
		Items:      []models.OrderItemInput{{ProductID: "zzz", Name: "x"}},
	})
	requireValidation(t, err, msgInvalidProduct)

	_, err = f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: primitive.NewObjectID().Hex(),
		Code:       "P001",
		Items:      []models.OrderItemInput{{Name: "x"}, {Quantity: 2, LineTotal: ptr(10.0)}},
	})
	requireValidation(t, err, msgIncompleteItem)

	_, err = f.svc.CreateOrder(ctx, models.OrderInput{CustomerID: primitive.NewObjectID().Hex(), Code: "P001"})
	requireValidation(t, err, "El campo productos es requerido")

	assert.Zero(t, f.calls.Load())
}

func TestCreateOrderDerivesTotalAndDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.createCustomer(t, "C001")
	productID := primitive.NewObjectID()

	order, err := f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: customer.ID.Hex(),
		Code:       "P001",
		Items: []models.OrderItemInput{
			{ProductID: productID.Hex(), Name: "MacBook Air M2", Quantity: 1, UnitPrice: 1200000, LineTotal: ptr(1200000.0)},
			{Name: "AirPods Pro", Quantity: 2, UnitPrice: 220000, LineTotal: ptr(440000.0)},
			{Name: "Regalo", Quantity: 1},
		},
		PaymentMethod: "Transferencia",
	})
	require.NoError(t, err)
	assert.Equal(t, 1640000.0, order.Total)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), order.OrderedAt)
	require.NotNil(t, order.Items[0].ProductID)
	assert.Equal(t, productID, *order.Items[0].ProductID)
	assert.Nil(t, order.Items[1].ProductID)

	got, err := f.svc.GetOrder(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = f.svc.CreateOrder(ctx, models.OrderInput{
		CustomerID: customer.ID.Hex(),
		Code:       "P001",
		Items:      []models.OrderItemInput{{Name: "x"}},
	})
	requireValidation(t, err, "Ya existe un pedido con ese código")
}

func TestCreateOrderKeepsSuppliedTotal(t *testing.T) {
	f := newFixture(t)
	customer := f.createCustomer(t, "C001")
	orderedAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.FixedZone("CLT", -4*3600))

	order, err := f.svc.CreateOrder(context.Background(), models.OrderInput{
		CustomerID: customer.ID.Hex(),
		Code:       "P009",
		Items:      []models.OrderItemInput{{Name: "x", LineTotal: ptr(10.0)}},
		Total:      ptr(99.5),
		OrderedAt:  &models.Timestamp{Time: orderedAt},
	})
	require.NoError(t, err)
	assert.Equal(t, 99.5, order.Total)
	assert.Equal(t, orderedAt.UTC(), order.OrderedAt)
}

func TestUpdateOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.createCustomer(t, "C001")
	other := f.createCustomer(t, "C002")
	order := f.createOrder(t, customer.ID, "P001")
	f.createOrder(t, customer.ID, "P002")

	_, err := f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{CustomerID: ptr("bad")})
	requireValidation(t, err, msgInvalidCustomer)

	_, err = f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{CustomerID: ptr(primitive.NewObjectID().Hex())})
	requireNotFound(t, err, "Cliente no encontrado")

	_, err = f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{Code: ptr("P002")})
	requireValidation(t, err, "Ya existe un pedido con ese código")

	_, err = f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{Items: &[]models.OrderItemInput{}})
	requireValidation(t, err, msgNoItems)

	_, err = f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{Items: &[]models.OrderItemInput{{}}})
	requireValidation(t, err, msgIncompleteItem)

	updated, err := f.svc.UpdateOrder(ctx, order.ID.Hex(), models.OrderPatch{
		CustomerID: ptr(other.ID.Hex()),
		Code:       ptr("P001"),
		Items: &[]models.OrderItemInput{
			{Name: "Samsung Galaxy S23", Quantity: 2, UnitPrice: 750000, LineTotal: ptr(1500000.0)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CustomerID)
	assert.Equal(t, 1500000.0, updated.Total)
	assert.Equal(t, order.PaymentMethod, updated.PaymentMethod)
	assert.Equal(t, order.OrderedAt, updated.OrderedAt)

	_, err = f.svc.UpdateOrder(ctx, primitive.NewObjectID().Hex(), models.OrderPatch{PaymentMethod: ptr("Efectivo")})
	requireNotFound(t, err, "Pedido no encontrado")

	msg, err := f.svc.DeleteOrder(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Pedido eliminado exitosamente", msg)
	_, err = f.svc.DeleteOrder(ctx, order.ID.Hex())
	requireNotFound(t, err, "Pedido no encontrado")
}

func TestMalformedIDsNeverReachTheStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bad := "123"

	cases := map[string]struct {
		call func() error
		msg  string
	}{
		"get customer":    {func() error { _, err := f.svc.GetCustomer(ctx, bad); return err }, "ID de cliente inválido"},
		"update customer": {func() error { _, err := f.svc.UpdateCustomer(ctx, bad, models.CustomerPatch{FirstName: ptr("x")}); return err }, "ID de cliente inválido"},
		"delete customer": {func() error { _, err := f.svc.DeleteCustomer(ctx, bad); return err }, "ID de cliente inválido"},
		"get product":     {func() error { _, err := f.svc.GetProduct(ctx, bad); return err }, "ID de producto inválido"},
		"update product":  {func() error { _, err := f.svc.UpdateProduct(ctx, bad, models.ProductPatch{Stock: ptr(1)}); return err }, "ID de producto inválido"},
		"delete product":  {func() error { _, err := f.svc.DeleteProduct(ctx, bad); return err }, "ID de producto inválido"},
		"get order":       {func() error { _, err := f.svc.GetOrder(ctx, bad); return err }, "ID de pedido inválido"},
		"update order":    {func() error { _, err := f.svc.UpdateOrder(ctx, bad, models.OrderPatch{Code: ptr("x")}); return err }, "ID de pedido inválido"},
		"delete order":    {func() error { _, err := f.svc.DeleteOrder(ctx, bad); return err }, "ID de pedido inválido"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			requireValidation(t, tc.call(), tc.msg)
		})
	}
	assert.Zero(t, f.calls.Load())
}

func TestStoreFailuresAreInternal(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.ListCustomers(ctx)
	var ie *apierror.InternalError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 500, apierror.Status(err))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.createCustomer(t, "C001")
	for _, id := range []string{"C002", "C003", "C004"} {
		f.createCustomer(t, id)
	}
	f.createOrder(t, customer.ID, "P001")

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Customers.Count)
	assert.Len(t, stats.Customers.Sample, SampleSize)
	assert.Equal(t, int64(0), stats.Products.Count)
	assert.Empty(t, stats.Products.Sample)
	assert.Equal(t, int64(1), stats.Orders.Count)
	assert.Equal(t, int64(5), stats.TotalDocuments())
}

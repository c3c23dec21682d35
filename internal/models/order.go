package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a product taken when the order was placed.
// It is never refreshed from the productos collection.
type OrderItem struct {
	ProductID *primitive.ObjectID `bson:"productoId,omitempty" json:"productoId,omitempty"`
	Name      string              `bson:"nombre" json:"nombre"`
	Quantity  int                 `bson:"cantidad" json:"cantidad"`
	UnitPrice float64             `bson:"precio_unitario" json:"precio_unitario"`
	LineTotal float64             `bson:"total_comprado" json:"total_comprado"`
}

// Order is a document of the pedidos collection.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code          string             `bson:"codigo_pedido" json:"codigo_pedido"`
	CustomerID    primitive.ObjectID `bson:"clienteId" json:"clienteId"`
	OrderedAt     time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
	Items         []OrderItem        `bson:"productos" json:"productos"`
	Total         float64            `bson:"total_compra" json:"total_compra"`
	PaymentMethod string             `bson:"metodo_pago" json:"metodo_pago"`
}

// OrderItemInput is one line of an order payload. A line needs a name or a
// product reference; null and empty objects are rejected.
type OrderItemInput struct {
	ProductID string   `json:"productoId" validate:"omitempty,objectid"`
	Name      string   `json:"nombre" validate:"required_without=ProductID"`
	Quantity  int      `json:"cantidad" validate:"gte=0"`
	UnitPrice float64  `json:"precio_unitario" validate:"gte=0"`
	LineTotal *float64 `json:"total_comprado" validate:"omitnil,gte=0"`
}

// OrderInput is the payload of POST /pedidos.
type OrderInput struct {
	CustomerID    string           `json:"clienteId" validate:"required,objectid"`
	Items         []OrderItemInput `json:"productos" validate:"required,min=1,dive"`
	Code          string           `json:"codigo_pedido" validate:"required"`
	Total         *float64         `json:"total_compra" validate:"omitnil,gte=0"`
	PaymentMethod string           `json:"metodo_pago"`
	OrderedAt     *Timestamp       `json:"fecha_pedido"`
}

// Order builds the document to insert. Missing totals are derived from the
// line items and a missing order date becomes now.
func (in OrderInput) Order(now time.Time) (Order, error) {
	customerID, err := primitive.ObjectIDFromHex(in.CustomerID)
	if err != nil {
		return Order{}, err
	}
	items, err := BuildOrderItems(in.Items)
	if err != nil {
		return Order{}, err
	}

	order := Order{
		Code:          in.Code,
		CustomerID:    customerID,
		OrderedAt:     NormalizeTime(now),
		Items:         items,
		Total:         ItemsTotal(items),
		PaymentMethod: in.PaymentMethod,
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.OrderedAt != nil {
		order.OrderedAt = NormalizeTime(in.OrderedAt.Time)
	}
	return order, nil
}

// OrderPatch is the payload of PUT /pedidos/:id.
type OrderPatch struct {
	CustomerID    *string           `json:"clienteId" validate:"omitnil,objectid"`
	Items         *[]OrderItemInput `json:"productos" validate:"omitnil,min=1,dive"`
	Code          *string           `json:"codigo_pedido" validate:"omitnil,min=1"`
	Total         *float64          `json:"total_compra" validate:"omitnil,gte=0"`
	PaymentMethod *string           `json:"metodo_pago"`
	OrderedAt     *Timestamp        `json:"fecha_pedido"`
}

func (p OrderPatch) Empty() bool {
	return p.CustomerID == nil && p.Items == nil && p.Code == nil &&
		p.Total == nil && p.PaymentMethod == nil && p.OrderedAt == nil
}

// SetDocument returns the $set document for the fields present in p. When
// the line items are replaced without an explicit total, the total is
// derived from the new items.
func (p OrderPatch) SetDocument() (bson.M, error) {
	set := bson.M{}
	if p.CustomerID != nil {
		customerID, err := primitive.ObjectIDFromHex(*p.CustomerID)
		if err != nil {
			return nil, err
		}
		set["clienteId"] = customerID
	}
	if p.Items != nil {
		items, err := BuildOrderItems(*p.Items)
		if err != nil {
			return nil, err
		}
		set["productos"] = items
		if p.Total == nil {
			set["total_compra"] = ItemsTotal(items)
		}
	}
	if p.Code != nil {
		set["codigo_pedido"] = *p.Code
	}
	if p.Total != nil {
		set["total_compra"] = *p.Total
	}
	if p.PaymentMethod != nil {
		set["metodo_pago"] = *p.PaymentMethod
	}
	if p.OrderedAt != nil {
		set["fecha_pedido"] = NormalizeTime(p.OrderedAt.Time)
	}
	return set, nil
}

func BuildOrderItems(inputs []OrderItemInput) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := OrderItem{
			Name:      in.Name,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		if in.ProductID != "" {
			productID, err := primitive.ObjectIDFromHex(in.ProductID)
			if err != nil {
				return nil, err
			}
			item.ProductID = &productID
		}
		if in.LineTotal != nil {
			item.LineTotal = *in.LineTotal
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemsTotal sums the caller supplied line totals. Items without a total
// count as zero.
func ItemsTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.LineTotal))
	}
	return total.InexactFloat64()
}

// NormalizeTime truncates t to the precision the store keeps, in UTC.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

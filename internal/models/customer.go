package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the layout of Customer.RegisteredAt.
const DateLayout = "2006-01-02"

type Address struct {
	Street string     `bson:"calle" json:"calle"`
	Number FlexString `bson:"numero" json:"numero"`
	City   string     `bson:"ciudad" json:"ciudad"`
}

// Customer is a document of the clientes collection.
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Identifier   string             `bson:"identificador" json:"identificador"`
	FirstName    string             `bson:"nombre" json:"nombre"`
	LastName     string             `bson:"apellidos" json:"apellidos"`
	Address      *Address           `bson:"direccion,omitempty" json:"direccion,omitempty"`
	RegisteredAt string             `bson:"fechaRegistro" json:"fechaRegistro"`
}

// CustomerInput is the payload of POST /clientes.
type CustomerInput struct {
	FirstName    string   `json:"nombre" validate:"required"`
	LastName     string   `json:"apellidos" validate:"required"`
	Identifier   string   `json:"identificador" validate:"required"`
	Address      *Address `json:"direccion"`
	RegisteredAt *string  `json:"fechaRegistro" validate:"omitnil,datetime=2006-01-02"`
}

// Customer builds the document to insert. today is used when the payload
// carries no registration date.
func (in CustomerInput) Customer(today string) Customer {
	registeredAt := today
	if in.RegisteredAt != nil {
		registeredAt = *in.RegisteredAt
	}
	return Customer{
		Identifier:   in.Identifier,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Address:      in.Address,
		RegisteredAt: registeredAt,
	}
}

// CustomerPatch is the payload of PUT /clientes/:id. Nil fields are left
// untouched.
type CustomerPatch struct {
	Identifier   *string  `json:"identificador" validate:"omitnil,min=1"`
	FirstName    *string  `json:"nombre" validate:"omitnil,min=1"`
	LastName     *string  `json:"apellidos" validate:"omitnil,min=1"`
	Address      *Address `json:"direccion"`
	RegisteredAt *string  `json:"fechaRegistro" validate:"omitnil,datetime=2006-01-02"`
}

func (p CustomerPatch) Empty() bool {
	return len(p.SetDocument()) == 0
}

// SetDocument returns the $set document for the fields present in p.
func (p CustomerPatch) SetDocument() bson.M {
	set := bson.M{}
	if p.Identifier != nil {
		set["identificador"] = *p.Identifier
	}
	if p.FirstName != nil {
		set["nombre"] = *p.FirstName
	}
	if p.LastName != nil {
		set["apellidos"] = *p.LastName
	}
	if p.Address != nil {
		set["direccion"] = *p.Address
	}
	if p.RegisteredAt != nil {
		set["fechaRegistro"] = *p.RegisteredAt
	}
	return set
}

package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a document of the productos collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"nombre" json:"nombre"`
	Description string             `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	Price       float64            `bson:"precio" json:"precio"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"categoria" json:"categoria"`
}

// ProductInput is the payload of POST /productos. Required fields only need
// to be present; price and stock carry numeric rules.
type ProductInput struct {
	Name        *string  `json:"nombre" validate:"required"`
	Price       *float64 `json:"precio" validate:"required,gt=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Category    *string  `json:"categoria" validate:"required"`
	Description *string  `json:"descripcion"`
}

func (in ProductInput) Product() Product {
	p := Product{
		Name:     deref(in.Name),
		Category: deref(in.Category),
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	return p
}

// ProductPatch is the payload of PUT /productos/:id.
type ProductPatch struct {
	Name        *string  `json:"nombre" validate:"omitnil,min=1"`
	Price       *float64 `json:"precio" validate:"omitnil,gt=0"`
	Stock       *int     `json:"stock" validate:"omitnil,gte=0"`
	Category    *string  `json:"categoria" validate:"omitnil,min=1"`
	Description *string  `json:"descripcion"`
}

func (p ProductPatch) Empty() bool {
	return len(p.SetDocument()) == 0
}

func (p ProductPatch) SetDocument() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["nombre"] = *p.Name
	}
	if p.Price != nil {
		set["precio"] = *p.Price
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	if p.Category != nil {
		set["categoria"] = *p.Category
	}
	if p.Description != nil {
		set["descripcion"] = *p.Description
	}
	return set
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"comerciotech/internal/apierror"
)

const (
	msgNoData          = "No se proporcionaron datos"
	msgInvalidPrice    = "El precio debe ser un número positivo"
	msgInvalidStock    = "El stock debe ser un número entero no negativo"
	msgNoItems         = "Debe incluir al menos un producto"
	msgIncompleteItem  = "Cada producto debe incluir nombre o productoId"
	msgInvalidCustomer = "ID de cliente inválido"
	msgInvalidProduct  = "ID de producto inválido"
	msgInvalidJSON     = "JSON inválido"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Same rule the store applies to ids, case insensitive.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return v
}

// validatePayload checks payload against its validate tags. Missing required
// fields are reported before any other rule violation.
func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierror.Internal(err)
	}

	first := fieldErrs[0]
	for _, fe := range fieldErrs {
		if strings.HasPrefix(fe.Tag(), "required") {
			first = fe
			break
		}
	}
	return apierror.Validation(fieldMessage(first))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", field)
	case "required_without":
		return msgIncompleteItem
	case "objectid":
		if field == "productoId" {
			return msgInvalidProduct
		}
		return msgInvalidCustomer
	case "gt", "gte":
		switch field {
		case "precio":
			return msgInvalidPrice
		case "stock":
			return msgInvalidStock
		}
		return fmt.Sprintf("El campo %s no puede ser negativo", field)
	case "min":
		if field == "productos" {
			return msgNoItems
		}
		return fmt.Sprintf("El campo %s no puede estar vacío", field)
	case "datetime":
		return fmt.Sprintf("El campo %s debe tener el formato YYYY-MM-DD", field)
	}
	return fmt.Sprintf("El campo %s es inválido", field)
}

// NoData is reported for a request without a payload.
func NoData() error {
	return apierror.Validation(msgNoData)
}

// DecodeError reports a JSON value of the wrong type for field with the
// message the field's own rule uses. field is a dotted path such as
// "productos.cantidad"; an empty field means the payload is not an object.
func DecodeError(field string) error {
	if field == "" {
		return apierror.Validation(msgInvalidJSON)
	}
	parts := strings.Split(field, ".")
	switch parts[len(parts)-1] {
	case "precio":
		return apierror.Validation(msgInvalidPrice)
	case "stock":
		return apierror.Validation(msgInvalidStock)
	case "clienteId":
		return apierror.Validation(msgInvalidCustomer)
	case "productoId":
		return apierror.Validation(msgInvalidProduct)
	case "productos":
		return apierror.Validation(msgNoItems)
	}
	return apierror.Validation(fmt.Sprintf("El campo %s es inválido", field))
}

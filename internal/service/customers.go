package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"comerciotech/internal/apierror"
	"comerciotech/internal/models"
)

func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.Find(ctx, 0)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return customers, nil
}

func (s *Service) CreateCustomer(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	if err := validatePayload(in); err != nil {
		return models.Customer{}, err
	}

	if err := s.ensureUniqueIdentifier(ctx, in.Identifier); err != nil {
		return models.Customer{}, err
	}

	customer := in.Customer(s.now().Format(models.DateLayout))
	id, err := s.customers.Insert(ctx, customer)
	if err != nil {
		return models.Customer{}, storeError(err, customerMessages)
	}
	customer.ID = id
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, rawID string) (models.Customer, error) {
	id, err := parseID(rawID, customerMessages)
	if err != nil {
		return models.Customer{}, err
	}
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return models.Customer{}, storeError(err, customerMessages)
	}
	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, rawID string, patch models.CustomerPatch) (models.Customer, error) {
	id, err := parseID(rawID, customerMessages)
	if err != nil {
		return models.Customer{}, err
	}
	if patch.Empty() {
		return models.Customer{}, apierror.Validation(msgNoData)
	}
	if err := validatePayload(patch); err != nil {
		return models.Customer{}, err
	}

	current, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return models.Customer{}, storeError(err, customerMessages)
	}
	if patch.Identifier != nil && *patch.Identifier != current.Identifier {
		if err := s.ensureUniqueIdentifier(ctx, *patch.Identifier); err != nil {
			return models.Customer{}, err
		}
	}

	updated, err := s.customers.UpdateByID(ctx, id, patch.SetDocument())
	if err != nil {
		return models.Customer{}, storeError(err, customerMessages)
	}
	return updated, nil
}

// DeleteCustomer refuses to remove a customer that any order still
// references.
func (s *Service) DeleteCustomer(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID, customerMessages)
	if err != nil {
		return "", err
	}

	referencing, err := s.orders.Count(ctx, bson.M{"clienteId": id})
	if err != nil {
		return "", apierror.Internal(err)
	}
	if referencing > 0 {
		return "", apierror.Validation("No se puede eliminar el cliente porque tiene pedidos asociados")
	}

	if err := s.customers.DeleteByID(ctx, id); err != nil {
		return "", storeError(err, customerMessages)
	}
	return customerMessages.deleted, nil
}

func (s *Service) ensureUniqueIdentifier(ctx context.Context, identifier string) error {
	existing, err := s.customers.Count(ctx, bson.M{"identificador": identifier})
	if err != nil {
		return apierror.Internal(err)
	}
	if existing > 0 {
		return apierror.Validation(customerMessages.duplicate)
	}
	return nil
}

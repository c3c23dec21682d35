package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"comerciotech/internal/apierror"
	"comerciotech/internal/database"
	"comerciotech/internal/models"
)

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.Find(ctx, 0)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return orders, nil
}

func (s *Service) CreateOrder(ctx context.Context, in models.OrderInput) (models.Order, error) {
	if err := validatePayload(in); err != nil {
		return models.Order{}, err
	}

	order, err := in.Order(s.now())
	if err != nil {
		return models.Order{}, apierror.Validation(err.Error())
	}

	if err := s.ensureCustomerExists(ctx, order.CustomerID); err != nil {
		return models.Order{}, err
	}
	if err := s.ensureUniqueOrderCode(ctx, order.Code); err != nil {
		return models.Order{}, err
	}

	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return models.Order{}, storeError(err, orderMessages)
	}
	order.ID = id
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, rawID string) (models.Order, error) {
	id, err := parseID(rawID, orderMessages)
	if err != nil {
		return models.Order{}, err
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, storeError(err, orderMessages)
	}
	return order, nil
}

func (s *Service) UpdateOrder(ctx context.Context, rawID string, patch models.OrderPatch) (models.Order, error) {
	id, err := parseID(rawID, orderMessages)
	if err != nil {
		return models.Order{}, err
	}
	if patch.Empty() {
		return models.Order{}, apierror.Validation(msgNoData)
	}
	if err := validatePayload(patch); err != nil {
		return models.Order{}, err
	}
	set, err := patch.SetDocument()
	if err != nil {
		return models.Order{}, apierror.Validation(err.Error())
	}

	if customerID, ok := set["clienteId"].(primitive.ObjectID); ok {
		if err := s.ensureCustomerExists(ctx, customerID); err != nil {
			return models.Order{}, err
		}
	}
	if patch.Code != nil {
		current, err := s.orders.FindByID(ctx, id)
		if err != nil {
			return models.Order{}, storeError(err, orderMessages)
		}
		if current.Code != *patch.Code {
			if err := s.ensureUniqueOrderCode(ctx, *patch.Code); err != nil {
				return models.Order{}, err
			}
		}
	}

	updated, err := s.orders.UpdateByID(ctx, id, set)
	if err != nil {
		return models.Order{}, storeError(err, orderMessages)
	}
	return updated, nil
}

// DeleteOrder removes the order without any cascading check.
func (s *Service) DeleteOrder(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID, orderMessages)
	if err != nil {
		return "", err
	}
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		return "", storeError(err, orderMessages)
	}
	return orderMessages.deleted, nil
}

func (s *Service) ensureCustomerExists(ctx context.Context, customerID primitive.ObjectID) error {
	_, err := s.customers.FindByID(ctx, customerID)
	if errors.Is(err, database.ErrNotFound) {
		return apierror.NotFound(customerMessages.notFound)
	}
	if err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *Service) ensureUniqueOrderCode(ctx context.Context, code string) error {
	existing, err := s.orders.Count(ctx, bson.M{"codigo_pedido": code})
	if err != nil {
		return apierror.Internal(err)
	}
	if existing > 0 {
		return apierror.Validation(orderMessages.duplicate)
	}
	return nil
}

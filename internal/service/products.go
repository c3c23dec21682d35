package service

import (
	"context"

	"comerciotech/internal/apierror"
	"comerciotech/internal/models"
)

func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.Find(ctx, 0)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return products, nil
}

func (s *Service) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if err := validatePayload(in); err != nil {
		return models.Product{}, err
	}

	product := in.Product()
	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return models.Product{}, storeError(err, productMessages)
	}
	product.ID = id
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, rawID string) (models.Product, error) {
	id, err := parseID(rawID, productMessages)
	if err != nil {
		return models.Product{}, err
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, storeError(err, productMessages)
	}
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, rawID string, patch models.ProductPatch) (models.Product, error) {
	id, err := parseID(rawID, productMessages)
	if err != nil {
		return models.Product{}, err
	}
	if patch.Empty() {
		return models.Product{}, apierror.Validation(msgNoData)
	}
	if err := validatePayload(patch); err != nil {
		return models.Product{}, err
	}

	updated, err := s.products.UpdateByID(ctx, id, patch.SetDocument())
	if err != nil {
		return models.Product{}, storeError(err, productMessages)
	}
	return updated, nil
}

// DeleteProduct removes the product unconditionally. Orders keep their own
// snapshot of it.
func (s *Service) DeleteProduct(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID, productMessages)
	if err != nil {
		return "", err
	}
	if err := s.products.DeleteByID(ctx, id); err != nil {
		return "", storeError(err, productMessages)
	}
	return productMessages.deleted, nil
}

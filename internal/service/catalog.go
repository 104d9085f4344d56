package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/transport"
)

// Catalog page size cap; geo and plain listings share it.
const MaxPageSize = 50

// DefaultRadiusM is used when a center point arrives without a radius.
const DefaultRadiusM = 10000

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, farmerID uuid.UUID, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: name and category required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	prod := &models.Product{
		ID:          uuid.New(),
		FarmerID:    farmerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Location:    req.Location,
		Active:      true,
		Image:       req.Image,
	}

	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.HasGeo && f.RadiusM <= 0 {
		f.RadiusM = DefaultRadiusM
	}
	return s.Repo.ListActiveProducts(ctx, f)
}

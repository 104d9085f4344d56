package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
)

// Most recent orders surfaced by the notifications feed.
const NotificationsLimit = 10

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder places a vendor's order against a product. The stock check and
// the decrement-plus-insert are delegated to the repo transaction, so a
// concurrent order for the same product can never drive quantity negative.
func (s *OrderService) CreateOrder(ctx context.Context, vendorID, productID uuid.UUID, quantity int64) (*models.Order, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if repo.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !product.Active {
		return nil, ErrNotFound
	}
	if quantity > product.Quantity {
		return nil, ErrInsufficientStock
	}

	order := &models.Order{
		ID:         uuid.New(),
		VendorID:   vendorID,
		FarmerID:   product.FarmerID,
		ProductID:  product.ID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		Status:     models.StatusPending,
	}

	if err := s.Repo.CreateOrderWithStock(ctx, order); err != nil {
		if errors.Is(err, repo.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, callerID uuid.UUID, role models.Role) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, callerID, role)
}

func (s *OrderService) RecentOrders(ctx context.Context, callerID uuid.UUID, role models.Role) ([]models.Order, error) {
	return s.Repo.RecentOrders(ctx, callerID, role, NotificationsLimit)
}

// UpdateOrderStatus advances an order along the status chain. Only the owning
// farmer may call it; an order outside the caller's ownership reads as absent.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, farmerID, orderID uuid.UUID, newStatus string) (*models.Order, error) {
	status, ok := models.ParseOrderStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, newStatus)
	}

	order, err := s.Repo.GetOrderForFarmer(ctx, orderID, farmerID)
	if err != nil {
		if repo.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

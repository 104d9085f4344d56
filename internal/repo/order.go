package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/models"
)

// CreateOrderWithStock inserts the order and takes its quantity off the
// product inside one transaction. The decrement is conditional on remaining
// stock, so two orders racing for the last units cannot both win: the loser's
// UPDATE matches zero rows and the whole transaction rolls back with
// ErrInsufficientStock.
func (r *GormRepo) CreateOrderWithStock(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity >= ?", order.ProductID, order.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", order.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		return tx.Create(order).Error
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, callerID uuid.UUID, role models.Role) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if role == models.RoleFarmer {
		q = q.Where("farmer_id = ?", callerID)
	} else {
		q = q.Where("vendor_id = ?", callerID)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// RecentOrders feeds the notifications endpoint: latest activity first.
func (r *GormRepo) RecentOrders(ctx context.Context, callerID uuid.UUID, role models.Role, limit int) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if role == models.RoleFarmer {
		q = q.Where("farmer_id = ?", callerID)
	} else {
		q = q.Where("vendor_id = ?", callerID)
	}

	var orders []models.Order
	if err := q.Order("updated_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrderForFarmer(ctx context.Context, orderID, farmerID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Where("id = ? AND farmer_id = ?", orderID, farmerID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

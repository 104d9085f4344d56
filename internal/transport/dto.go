package transport

import (
	"github.com/google/uuid"

	"github.com/agrolink/farm_market/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Location models.Location `json:"location"`
	Phone    string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Quantity    int64           `json:"quantity"`
	Category    string          `json:"category"`
	Location    models.Location `json:"location"`
	Image       string          `json:"image"`
}

type CreateOrderRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

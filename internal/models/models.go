package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleVendor Role = "vendor"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleFarmer:
		return RoleFarmer, true
	case RoleVendor:
		return RoleVendor, true
	}
	return "", false
}

// Location is embedded into users and products so the stored point and the
// JSON shape stay identical everywhere.
type Location struct {
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string    `gorm:"not null"                  json:"-"`
	Name         string    `gorm:"not null"                  json:"name"`
	Role         Role      `gorm:"not null"                  json:"role"`
	Location     Location  `gorm:"embedded;embeddedPrefix:loc_" json:"location"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	FarmerID    uuid.UUID `gorm:"type:uuid;index;not null"  json:"farmer_id"`
	Name        string    `gorm:"not null"                  json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `gorm:"not null"                  json:"price"`
	Quantity    int64     `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Category    string    `gorm:"index;not null"            json:"category"`
	Location    Location  `gorm:"embedded;embeddedPrefix:loc_" json:"location"`
	Active      bool      `gorm:"not null;default:true"     json:"active"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Order rows are append-only: created once in StatusPending, mutated only by
// status transitions, never deleted. FarmerID and TotalPrice are snapshots
// taken from the product at creation time.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"     json:"id"`
	VendorID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"vendor_id"`
	FarmerID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"farmer_id"`
	ProductID  uuid.UUID   `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity   int64       `gorm:"not null;check:quantity > 0" json:"quantity"`
	TotalPrice float64     `gorm:"not null"                 json:"total_price"`
	Status     OrderStatus `gorm:"not null"                 json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

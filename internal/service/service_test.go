package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/hash"
	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// Every pooled connection gets its own :memory: database, so pin the
	// pool to a single one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &repo.GormRepo{DB: db}
}

func seedUser(t *testing.T, r *repo.GormRepo, email string, role models.Role) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: pwHash,
		Name:         "test user",
		Role:         role,
		Location:     models.Location{Latitude: 52.52, Longitude: 13.405},
	}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, r *repo.GormRepo, farmerID uuid.UUID, price float64, quantity int64) *models.Product {
	t.Helper()

	prod := &models.Product{
		ID:       uuid.New(),
		FarmerID: farmerID,
		Name:     "tomatoes",
		Price:    price,
		Quantity: quantity,
		Category: "vegetables",
		Location: models.Location{Latitude: 52.52, Longitude: 13.405},
		Active:   true,
	}
	require.NoError(t, r.DB.Create(prod).Error)
	return prod
}

func productQuantity(t *testing.T, r *repo.GormRepo, id uuid.UUID) int64 {
	t.Helper()

	var prod models.Product
	require.NoError(t, r.DB.Where("id = ?", id).First(&prod).Error)
	return prod.Quantity
}

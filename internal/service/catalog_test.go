package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/transport"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	farmer := seedUser(t, r, "farmer@example.com", models.RoleFarmer)

	prod, err := svc.CreateProduct(ctx, farmer.ID, transport.CreateProductRequest{
		Name:     "potatoes",
		Price:    12.5,
		Quantity: 200,
		Category: "vegetables",
		Location: models.Location{Latitude: 52.52, Longitude: 13.405},
	})
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, prod.FarmerID)
	assert.True(t, prod.Active)

	got, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, got.ID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	farmer := seedUser(t, r, "farmer@example.com", models.RoleFarmer)

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "missing name", req: transport.CreateProductRequest{Price: 1, Quantity: 1, Category: "x"}},
		{name: "missing category", req: transport.CreateProductRequest{Name: "x", Price: 1, Quantity: 1}},
		{name: "zero price", req: transport.CreateProductRequest{Name: "x", Price: 0, Quantity: 1, Category: "x"}},
		{name: "negative price", req: transport.CreateProductRequest{Name: "x", Price: -3, Quantity: 1, Category: "x"}},
		{name: "negative quantity", req: transport.CreateProductRequest{Name: "x", Price: 1, Quantity: -1, Category: "x"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, farmer.ID, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_ListProducts_GeoFilter(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	farmer := seedUser(t, r, "farmer@example.com", models.RoleFarmer)

	// Center: Berlin Mitte. Near is ~1 km away, far is Hamburg (~255 km).
	near := seedProduct(t, r, farmer.ID, 10, 50)
	require.NoError(t, r.DB.Model(near).Updates(map[string]any{"loc_latitude": 52.53, "loc_longitude": 13.41}).Error)

	far := seedProduct(t, r, farmer.ID, 10, 50)
	require.NoError(t, r.DB.Model(far).Updates(map[string]any{"loc_latitude": 53.55, "loc_longitude": 9.99}).Error)

	nearInactive := seedProduct(t, r, farmer.ID, 10, 50)
	require.NoError(t, r.DB.Model(nearInactive).Updates(map[string]any{"loc_latitude": 52.53, "loc_longitude": 13.41, "active": false}).Error)

	products, err := svc.ListProducts(ctx, repo.ProductFilter{
		HasGeo:  true,
		Lat:     52.52,
		Lon:     13.405,
		RadiusM: 10000,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, near.ID, products[0].ID)
}

func TestCatalogService_ListProducts_NoGeoReturnsAllActive(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	farmer := seedUser(t, r, "farmer@example.com", models.RoleFarmer)
	seedProduct(t, r, farmer.ID, 10, 50)
	inactive := seedProduct(t, r, farmer.ID, 10, 50)
	require.NoError(t, r.DB.Model(inactive).Update("active", false).Error)

	products, err := svc.ListProducts(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_ListProducts_CappedAtPageSize(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	farmer := seedUser(t, r, "farmer@example.com", models.RoleFarmer)
	for i := 0; i < MaxPageSize+5; i++ {
		prod := seedProduct(t, r, farmer.ID, 10, 50)
		require.NoError(t, r.DB.Model(prod).Update("name", fmt.Sprintf("product-%d", i)).Error)
	}

	products, err := svc.ListProducts(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, MaxPageSize)
}

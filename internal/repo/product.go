package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/agrolink/farm_market/internal/geo"
	"github.com/agrolink/farm_market/internal/models"
)

type ProductFilter struct {
	// Center point plus radius in meters; applied only when HasGeo is set.
	HasGeo  bool
	Lat     float64
	Lon     float64
	RadiusM float64

	Limit int
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActiveProducts returns active listings, geo-restricted when the filter
// carries a center point. The box prefilter runs in SQL; the exact
// great-circle check runs here because plain Postgres has no distance
// operator on two float columns.
func (r *GormRepo) ListActiveProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Where("active = ?", true)

	if f.HasGeo {
		b := geo.BoundingBox(f.Lat, f.Lon, f.RadiusM)
		q = q.Where("loc_latitude BETWEEN ? AND ?", b.MinLat, b.MaxLat).
			Where("loc_longitude BETWEEN ? AND ?", b.MinLon, b.MaxLon)
	}

	var items []models.Product
	if err := q.Order("created_at DESC").Limit(f.Limit).Find(&items).Error; err != nil {
		return nil, err
	}

	if !f.HasGeo {
		return items, nil
	}

	out := items[:0]
	for _, p := range items {
		d := geo.DistanceMeters(f.Lat, f.Lon, p.Location.Latitude, p.Location.Longitude)
		if d <= f.RadiusM {
			out = append(out, p)
		}
	}
	return out, nil
}

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/logging"
	authmw "github.com/agrolink/farm_market/internal/middleware/auth"
	"github.com/agrolink/farm_market/internal/mykafka"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/service"
	"github.com/agrolink/farm_market/internal/transport"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list_products")

	f := repo.ProductFilter{Limit: service.MaxPageSize}

	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lon")
	if latParam != "" && lonParam != "" {
		lat, errLat := strconv.ParseFloat(latParam, 64)
		lon, errLon := strconv.ParseFloat(lonParam, 64)
		if errLat != nil || errLon != nil {
			l.Warn("list_products_error", "status", 400, "reason", "lat/lon not numbers")
			return echo.NewHTTPError(http.StatusBadRequest, "lat and lon must be numbers")
		}
		f.HasGeo = true
		f.Lat = lat
		f.Lon = lon
		if rParam := c.QueryParam("radius"); rParam != "" {
			r, err := strconv.ParseFloat(rParam, 64)
			if err != nil || r <= 0 {
				l.Warn("list_products_error", "status", 400, "reason", "radius invalid")
				return echo.NewHTTPError(http.StatusBadRequest, "radius must be a positive number")
			}
			f.RadiusM = r
		}
	}

	products, err := h.Svc.ListProducts(ctx, f)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("list_products_success", "count", len(products))
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	farmerID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("create_product_error", "status", 401, "reason", "no user in context", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, farmerID, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product")
	}

	publish(c, h.Producer, mykafka.TopicProductEvents, product.ID.String(), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"farmerID":  product.FarmerID,
		"name":      product.Name,
	})

	l.Info("create_product_success")
	return c.JSON(http.StatusCreated, echo.Map{"product": product})
}

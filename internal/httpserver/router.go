package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/agrolink/farm_market/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	SearchHandler  *SearchHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/login", d.AuthHandler.Login)

	e.GET("/products", d.CatalogHandler.ListProducts)
	if d.SearchHandler != nil {
		e.GET("/products/search", d.SearchHandler.Search)
	}
	e.GET("/products/:id", d.CatalogHandler.GetProduct)

	authd := e.Group("", authmw.RequireAuth(d.JWTSecret))

	authd.POST("/products", d.CatalogHandler.CreateProduct, authmw.RequireFarmer)

	authd.POST("/orders", d.OrderHandler.CreateOrder, authmw.RequireVendor)
	authd.GET("/orders", d.OrderHandler.ListOrders)
	authd.PATCH("/orders/:id", d.OrderHandler.UpdateOrderStatus, authmw.RequireFarmer)

	authd.GET("/notifications", d.OrderHandler.Notifications)
}

package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth       *handler.AuthHandler
	Book       *handler.BookHandler
	AdminBook  *handler.AdminBookHandler
	Category   *handler.CategoryHandler
	Discount   *handler.DiscountHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Customer   *handler.CustomerHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e, cfg)
	h.Book.RegisterRoutes(e)
	h.AdminBook.RegisterRoutes(e, cfg)
	h.Category.RegisterRoutes(e, cfg)
	h.Discount.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.Customer.RegisterRoutes(e, cfg)
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers, opt Options) {
	api := e.Group("/api")
	h.Auth.RegisterRoutes(api)
	h.Products.RegisterRoutes(api)
	h.Orders.RegisterRoutes(api, opt.TokenParser)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if opt.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opt.Metrics.Handler()))
	}
}

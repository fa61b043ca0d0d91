package handler

import (
	"net/http"
	"strconv"

	"shoppingpaglu/internal/middleware"
	"shoppingpaglu/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	UserEmail string           `json:"userEmail"`
	Cart      map[string]int64 `json:"cart"`
}

type orderCreateResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// 注文作成は認証なし（userEmailはbodyで受け取る）。参照系はJWT必須
func (h *OrderHandler) RegisterRoutes(g *echo.Group, parser middleware.TokenParser) {
	g.POST("/orders", h.create)

	authJWT := middleware.AuthJWT(parser)
	g.GET("/orders", h.list, authJWT)
	g.GET("/orders/:id", h.detail, authJWT)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserEmail: req.UserEmail,
		Cart:      req.Cart,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderCreateResponse{
		Message: "Order created successfully",
		OrderID: out.OrderID,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	email, ok := middleware.UserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	email, ok := middleware.UserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid order id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), email, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package handler

import (
	"net/http"

	"elegance/internal/delivery/http/middleware"
	"elegance/internal/delivery/http/response"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateOrderStatusInput is the admin status-change request body.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderHandler holds dependencies for order history handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListOrders returns the orders visible to the requester.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context(), middleware.Requester(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), middleware.Requester(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetReceipt renders the receipt QR code for one order.
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	png, err := h.uc.ReceiptQR(c.Request().Context(), middleware.Requester(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateStatus moves an order to a new status (admin surface).
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

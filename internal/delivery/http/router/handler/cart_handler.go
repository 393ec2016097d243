package handler

import (
	"net/http"

	"elegance/internal/delivery/http/response"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddCartItemInput is the add-to-cart request body. Quantity defaults to one
// when omitted.
type AddCartItemInput struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemInput is the set-quantity request body.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart returns the cart with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds a catalog item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if input.Quantity == 0 {
		input.Quantity = 1
	}

	view, err := h.uc.AddItem(c.Request().Context(), input.ItemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// UpdateItem sets the quantity of one cart entry.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	view, err := h.uc.SetQuantity(c.Request().Context(), c.Param("id"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RemoveItem deletes one cart entry.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

package handler

import (
	"net/http"

	"elegance/internal/delivery/http/response"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for catalog browsing handlers.
type MenuHandler struct {
	uc usecase.CatalogUsecase
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.CatalogUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// ListItems returns the full menu.
func (h *MenuHandler) ListItems(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListItems(), "")
}

// ListFeatured returns the featured menu items.
func (h *MenuHandler) ListFeatured(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.FeaturedItems(), "")
}

// ListCategories returns the menu categories.
func (h *MenuHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListCategories(), "")
}

// ListByCategory returns the items of one category.
func (h *MenuHandler) ListByCategory(c echo.Context) error {
	items, err := h.uc.ItemsByCategory(c.Param("categoryId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetItem returns a single menu item.
func (h *MenuHandler) GetItem(c echo.Context) error {
	item, err := h.uc.ItemByID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

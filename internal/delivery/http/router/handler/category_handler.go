package handler

import (
	"net/http"

	"optika/internal/delivery/http/response"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc usecase.CatalogUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// List handles the storefront category listing.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Create handles admin category creation.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// Update handles admin category updates.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// Delete handles admin category deletion.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

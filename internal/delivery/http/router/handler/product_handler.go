package handler

import (
	"io"
	"net/http"

	"optika/internal/delivery/http/response"
	"optika/internal/domain/repository"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxImageUploadBytes caps a single product image upload.
const maxImageUploadBytes = 5 << 20

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url"`
	FaceShape   *string         `json:"face_shape"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
}

func (r *productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		FaceShape:   r.FaceShape,
		CategoryID:  r.CategoryID,
	}
}

// List handles the storefront product listing with optional filters.
func (h *ProductHandler) List(c echo.Context) error {
	var filter repository.ProductFilter

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
		}
		filter.CategoryID = &categoryID
	}
	if raw := c.QueryParam("face_shape"); raw != "" {
		filter.FaceShape = &raw
	}

	products, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get handles a single product lookup.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create handles admin product creation.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update handles admin product updates.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete handles admin product deletion.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// UploadImage handles admin product image uploads via multipart form.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}
	if fileHeader.Size > maxImageUploadBytes {
		return response.BadRequest(c, "INVALID_INPUT", "Image exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		return errors.WithStack(err)
	}

	url, err := h.uc.UploadProductImage(c.Request().Context(), id, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image_url": url}, "Image uploaded")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Dosage      string  `json:"dosage"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	Supplier    string  `json:"supplier"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Dosage      *string  `json:"dosage"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Quantity    *int     `json:"quantity"`
	Supplier    *string  `json:"supplier"`
}

// List returns the full catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, products)
}

// Get returns one product by id.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

// Create adds a catalog product (admin only).
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  dataResponse
// @Failure      409   {object}  map[string]any
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Dosage:      req.Dosage,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, product)
}

// Update applies a partial product update (admin only).
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  dataResponse
// @Failure      409   {object}  map[string]any
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Dosage:      req.Dosage,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

// Delete removes a product (admin only).
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  dataResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "product deleted")
}

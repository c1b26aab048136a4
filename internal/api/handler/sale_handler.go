package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/api/metrics"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// List handles GET /sales.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Sale
// @Router       /sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Get handles GET /sales/:id.
//
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  domain.Sale
// @Failure      404  {object}  errorResponse
// @Router       /sales/{id} [get]
func (h *SaleHandler) Get(c echo.Context) error {
	sale, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Create handles POST /sales.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saleRequest  true  "Sale fields"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toSaleInput(req)
	if err != nil {
		return err
	}

	sale, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.SalesCreatedTotal.WithLabelValues(sale.Category).Inc()
	return c.JSON(http.StatusCreated, sale)
}

// Update handles PUT /sales/:id.
//
// @Summary      Update a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Sale id"
// @Param        body  body      saleRequest  true  "Sale fields"
// @Success      200   {object}  domain.Sale
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sales/{id} [put]
func (h *SaleHandler) Update(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toSaleInput(req)
	if err != nil {
		return err
	}

	sale, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Delete handles DELETE /sales/:id.
//
// @Summary      Delete a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /sales/{id} [delete]
func (h *SaleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "sale deleted"})
}

func toSaleInput(req saleRequest) (ports.SaleInput, error) {
	soldOn, ok := parseSoldOn(req.SoldOn)
	if !ok {
		return ports.SaleInput{}, echo.NewHTTPError(http.StatusBadRequest, "soldOn must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	return ports.SaleInput{
		ItemID:     req.ItemID,
		Category:   req.Category,
		BuyerID:    req.BuyerID,
		SupplierID: req.SupplierID,
		SoldOn:     soldOn,
		Price:      req.Price,
		AmountSold: req.AmountSold,
	}, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/core/ports"
)

// EntityHandler handles HTTP requests for buyers and suppliers.
type EntityHandler struct {
	service ports.EntityService
}

func NewEntityHandler(service ports.EntityService) *EntityHandler {
	return &EntityHandler{service: service}
}

// List handles GET /entities.
//
// @Summary      List buyers and suppliers
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Entity
// @Router       /entities [get]
func (h *EntityHandler) List(c echo.Context) error {
	entities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entities)
}

// Create handles POST /entities.
//
// @Summary      Create an entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entityRequest  true  "Entity fields"
// @Success      201   {object}  domain.Entity
// @Failure      400   {object}  errorResponse
// @Router       /entities [post]
func (h *EntityHandler) Create(c echo.Context) error {
	var req entityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entity, err := h.service.Create(c.Request().Context(), toEntityInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entity)
}

// Update handles PUT /entities/:id.
//
// @Summary      Update an entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Entity id"
// @Param        body  body      entityRequest  true  "Entity fields"
// @Success      200   {object}  domain.Entity
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /entities/{id} [put]
func (h *EntityHandler) Update(c echo.Context) error {
	var req entityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entity, err := h.service.Update(c.Request().Context(), c.Param("id"), toEntityInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity)
}

// Delete handles DELETE /entities/:id.
//
// @Summary      Delete an entity
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entity id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /entities/{id} [delete]
func (h *EntityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "entity deleted"})
}

func toEntityInput(req entityRequest) ports.EntityInput {
	return ports.EntityInput{
		Type:     req.Type,
		Name:     req.Name,
		Email:    req.Email,
		Business: req.Business,
		Contact:  req.Contact,
		Address:  req.Address,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RestoStock-api/internal/application/dto"
	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
)

// StockHandler consultas de solo lectura del ledger para dashboards y
// listados (protegido). Nunca muta stock.
type StockHandler struct {
	query *stockops.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *stockops.StockQueryUseCase) *StockHandler {
	return &StockHandler{query: query}
}

// LocationSnapshot godoc
// @Summary      Snapshot de stock de una ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Success      200  {array}   dto.StockLevelDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/levels/{locationId} [get]
func (h *StockHandler) LocationSnapshot(c *fiber.Ctx) error {
	locationID := c.Params("locationId")
	levels, err := h.query.LocationSnapshot(locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"location_id": locationID,
		"total":       len(levels),
		"levels":      levels,
	})
}

// GetQuantity godoc
// @Summary      Cantidad actual de un elemento en una ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Param        elementId   path  string  true  "ID del elemento"
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/levels/{locationId}/{elementId} [get]
func (h *StockHandler) GetQuantity(c *fiber.Ctx) error {
	locationID := c.Params("locationId")
	elementID := c.Params("elementId")
	qty, err := h.query.GetQuantity(elementID, locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"element_id":  elementID,
		"location_id": locationID,
		"quantity":    qty,
	})
}

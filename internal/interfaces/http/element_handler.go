package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RestoStock-api/internal/application/dto"
	"github.com/jhoicas/RestoStock-api/internal/application/usecase"
	"github.com/jhoicas/RestoStock-api/internal/domain"
)

// ElementHandler maneja las peticiones HTTP del catálogo de elementos (protegido).
type ElementHandler struct {
	uc *usecase.ElementUseCase
}

// NewElementHandler construye el handler.
func NewElementHandler(uc *usecase.ElementUseCase) *ElementHandler {
	return &ElementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear elemento de catálogo
// @Tags         elements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateElementRequest  true  "Datos del elemento"
// @Success      201   {object}  dto.ElementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/elements [post]
func (h *ElementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateElementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener elemento por ID
// @Tags         elements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del elemento"
// @Success      200  {object}  dto.ElementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elements/{id} [get]
func (h *ElementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar elemento (incluida la bandera de activo)
// @Tags         elements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del elemento"
// @Param        body  body  dto.UpdateElementRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ElementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/elements/{id} [put]
func (h *ElementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateElementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar elementos del catálogo
// @Tags         elements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ElementListResponse
// @Router       /api/elements [get]
func (h *ElementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

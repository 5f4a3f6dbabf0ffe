package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RestoStock-api/internal/application/dto"
	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/internal/domain"
)

// OperationHandler maneja las peticiones HTTP de la cola de operaciones de
// stock: encolar, ejecutar un pase, barrer terminales y consultar historial
// (protegido).
type OperationHandler struct {
	enqueue *stockops.EnqueueOperationUseCase
	execute *stockops.ExecuteOperationsUseCase
	janitor *stockops.JanitorUseCase
	query   *stockops.StockQueryUseCase
}

// NewOperationHandler construye el handler.
func NewOperationHandler(
	enqueue *stockops.EnqueueOperationUseCase,
	execute *stockops.ExecuteOperationsUseCase,
	janitor *stockops.JanitorUseCase,
	query *stockops.StockQueryUseCase,
) *OperationHandler {
	return &OperationHandler{enqueue: enqueue, execute: execute, janitor: janitor, query: query}
}

// Enqueue godoc
// @Summary      Encolar operación de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnqueueOperationRequest  true  "kind (ENTREE/SORTIE/TRANSFERT), element_id, location_id o from/to_location_id, quantity"
// @Success      201   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/operations [post]
func (h *OperationHandler) Enqueue(c *fiber.Ctx) error {
	var in dto.EnqueueOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	op, err := h.enqueue.Enqueue(c.Context(), stockops.OperationInput{
		Kind:           in.Kind,
		ElementID:      in.ElementID,
		LocationID:     in.LocationID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Note:           in.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrElementInactive):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ELEMENT_INACTIVE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(stockops.ToOperationResponse(op))
}

// Run godoc
// @Summary      Ejecutar un pase del motor sobre el backlog pendiente
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  stockops.RunResult
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/operations/run [post]
func (h *OperationHandler) Run(c *fiber.Ctx) error {
	result, err := h.execute.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Sweep godoc
// @Summary      Barrer operaciones terminales fuera de la ventana de retención
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        retention_hours  query  int  false  "Ventana de retención en horas"  default(24)
// @Success      200  {object}  dto.SweepResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/operations/sweep [post]
func (h *OperationHandler) Sweep(c *fiber.Ctx) error {
	retention := time.Duration(c.QueryInt("retention_hours", 24)) * time.Hour
	removed, err := h.janitor.Sweep(c.Context(), retention)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SweepResponse{RemovedCount: removed})
}

// List godoc
// @Summary      Listar operaciones (historial, más recientes primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.OperationListResponse
// @Router       /api/stock/operations [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.query.RecentOperations(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una operación por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  dto.OperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/operations/{id} [get]
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetOperation(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
	}
	return c.JSON(out)
}

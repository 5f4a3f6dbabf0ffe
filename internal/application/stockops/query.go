package stockops

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/RestoStock-api/internal/application/dto"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

// ToOperationResponse mapea la entidad a su representación HTTP.
func ToOperationResponse(op *entity.Operation) dto.OperationResponse {
	return dto.OperationResponse{
		ID:             op.ID,
		Kind:           op.Kind,
		ElementID:      op.ElementID,
		LocationID:     op.LocationID,
		FromLocationID: op.FromLocationID,
		ToLocationID:   op.ToLocationID,
		Quantity:       op.Quantity,
		Note:           op.Note,
		Status:         op.Status,
		EnqueuedAt:     op.EnqueuedAt,
		ProcessedAt:    op.ProcessedAt,
		Error:          op.Error,
	}
}

// StockQueryUseCase consultas de solo lectura sobre el ledger y el historial
// de operaciones, para dashboards y listados. Nunca participa en la ruta de
// escritura.
type StockQueryUseCase struct {
	stockRepo   repository.StockRepository
	elementRepo repository.StockElementRepository
	opRepo      repository.OperationRepository
}

// NewStockQueryUseCase construye el caso de uso de consulta.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	elementRepo repository.StockElementRepository,
	opRepo repository.OperationRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, elementRepo: elementRepo, opRepo: opRepo}
}

// GetQuantity devuelve la cantidad actual de la celda (elemento, ubicación).
// Una celda inexistente se lee como cero.
func (uc *StockQueryUseCase) GetQuantity(elementID, locationID string) (decimal.Decimal, error) {
	cell, err := uc.stockRepo.Get(elementID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return cell.Quantity, nil
}

// LocationSnapshot devuelve el snapshot de todas las celdas de una ubicación,
// enriquecido con nombre, unidad y bandera de alerta del catálogo.
func (uc *StockQueryUseCase) LocationSnapshot(locationID string) ([]dto.StockLevelDTO, error) {
	cells, err := uc.stockRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	levels := make([]dto.StockLevelDTO, 0, len(cells))
	for _, cell := range cells {
		element, err := uc.elementRepo.GetByID(cell.ElementID)
		if err != nil {
			return nil, err
		}
		if element == nil {
			return nil, fmt.Errorf("%w: elemento %s referenciado por el ledger", domain.ErrNotFound, cell.ElementID)
		}
		levels = append(levels, dto.StockLevelDTO{
			ElementID:   cell.ElementID,
			ElementName: element.Name,
			LocationID:  cell.LocationID,
			Unit:        element.Unit,
			Quantity:    cell.Quantity,
			BelowAlert:  cell.Quantity.LessThan(element.AlertThreshold),
			UpdatedAt:   cell.UpdatedAt,
		})
	}
	return levels, nil
}

// RecentOperations lista el historial de operaciones, más recientes primero.
func (uc *StockQueryUseCase) RecentOperations(limit, offset int) (*dto.OperationListResponse, error) {
	ops, err := uc.opRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		items = append(items, ToOperationResponse(op))
	}
	return &dto.OperationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetOperation obtiene una operación por ID (nil si no existe).
func (uc *StockQueryUseCase) GetOperation(id string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	resp := ToOperationResponse(op)
	return &resp, nil
}

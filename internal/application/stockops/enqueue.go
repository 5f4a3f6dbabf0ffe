package stockops

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

// EnqueueOperationUseCase valida y encola operaciones de stock. Los
// productores (terminales de venta, producción, traslados) llaman Enqueue de
// forma concurrente e independiente: cada llamada es un insert sin
// coordinación, el orden real lo decide el enqueued_at asignado por el store.
type EnqueueOperationUseCase struct {
	opRepo       repository.OperationRepository
	elementRepo  repository.StockElementRepository
	locationRepo repository.LocationRepository
}

// NewEnqueueOperationUseCase construye el caso de uso.
func NewEnqueueOperationUseCase(
	opRepo repository.OperationRepository,
	elementRepo repository.StockElementRepository,
	locationRepo repository.LocationRepository,
) *EnqueueOperationUseCase {
	return &EnqueueOperationUseCase{
		opRepo:       opRepo,
		elementRepo:  elementRepo,
		locationRepo: locationRepo,
	}
}

// Enqueue valida el payload, verifica referencias del catálogo y agrega la
// operación a la cola con status PENDING. Si la validación falla no se
// escribe nada y el caller recibe el error de forma síncrona.
func (uc *EnqueueOperationUseCase) Enqueue(ctx context.Context, in OperationInput) (*entity.Operation, error) {
	if err := ValidateOperation(in); err != nil {
		return nil, err
	}

	element, err := uc.elementRepo.GetByID(in.ElementID)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, fmt.Errorf("%w: elemento %s", domain.ErrNotFound, in.ElementID)
	}
	if !element.Active {
		return nil, fmt.Errorf("%w: %s", domain.ErrElementInactive, element.Name)
	}

	if err := uc.checkLocations(in); err != nil {
		return nil, err
	}

	op := &entity.Operation{
		ID:             uuid.New().String(),
		Kind:           in.Kind,
		ElementID:      in.ElementID,
		LocationID:     in.LocationID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Note:           in.Note,
		Status:         entity.OperationStatusPending,
	}
	if err := uc.opRepo.Create(op); err != nil {
		return nil, err
	}
	return op, nil
}

// checkLocations verifica que las ubicaciones referenciadas existan.
func (uc *EnqueueOperationUseCase) checkLocations(in OperationInput) error {
	ids := []string{in.LocationID}
	if in.Kind == entity.OperationKindTransfert {
		ids = []string{in.FromLocationID, in.ToLocationID}
	}
	for _, id := range ids {
		loc, err := uc.locationRepo.GetByID(id)
		if err != nil {
			return err
		}
		if loc == nil {
			return fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, id)
		}
	}
	return nil
}

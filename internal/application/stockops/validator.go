package stockops

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
)

// OperationInput entrada tipada para encolar una operación de stock.
// Para ENTREE/SORTIE: ElementID, LocationID, Quantity.
// Para TRANSFERT: ElementID, FromLocationID, ToLocationID (distintos), Quantity.
type OperationInput struct {
	Kind           string
	ElementID      string
	LocationID     string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	Note           string
}

// ValidateOperation valida estructura y semántica del payload según el tipo.
// Es una función pura, síncrona y sin efectos: se ejecuta antes de cualquier
// escritura en la cola y en caso de error nada queda encolado.
func ValidateOperation(in OperationInput) error {
	if !entity.ValidOperationKind(in.Kind) {
		return fmt.Errorf("%w: tipo de operación desconocido %q", domain.ErrInvalidInput, in.Kind)
	}
	if in.ElementID == "" {
		return fmt.Errorf("%w: element_id es requerido", domain.ErrInvalidInput)
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: quantity debe ser un número positivo", domain.ErrInvalidInput)
	}

	switch in.Kind {
	case entity.OperationKindEntree, entity.OperationKindSortie:
		if in.LocationID == "" {
			return fmt.Errorf("%w: location_id es requerido para %s", domain.ErrInvalidInput, in.Kind)
		}
	case entity.OperationKindTransfert:
		if in.FromLocationID == "" || in.ToLocationID == "" {
			return fmt.Errorf("%w: from_location_id y to_location_id son requeridos para TRANSFERT", domain.ErrInvalidInput)
		}
		if in.FromLocationID == in.ToLocationID {
			return fmt.Errorf("%w: origen y destino del TRANSFERT deben ser distintos", domain.ErrInvalidInput)
		}
	}
	return nil
}

package stockops

import (
	"context"

	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del motor: mutación del
// ledger y escritura del estado terminal confirman (o se revierten) juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		stockRepo repository.StockRepository,
	) error) error
}

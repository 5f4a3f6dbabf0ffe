package stockops

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
	"github.com/jhoicas/RestoStock-api/pkg/logger"
)

// DefaultRetention ventana de retención por defecto para operaciones terminales.
const DefaultRetention = 24 * time.Hour

// JanitorUseCase barre la cola eliminando operaciones terminales (SUCCESS o
// FAILED) cuyo processed_at superó la ventana de retención. Nunca inspecciona
// ni elimina operaciones PENDING: una PENDING atascada es señal para alertar,
// no para borrar en silencio.
type JanitorUseCase struct {
	opRepo repository.OperationRepository
	log    *logger.Logger
}

// NewJanitorUseCase construye el janitor.
func NewJanitorUseCase(opRepo repository.OperationRepository, log *logger.Logger) *JanitorUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &JanitorUseCase{opRepo: opRepo, log: log}
}

// Sweep elimina operaciones terminales más viejas que retention y devuelve
// cuántas borró. Si retention <= 0 se usa DefaultRetention (24h).
func (uc *JanitorUseCase) Sweep(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	cutoff := time.Now().Add(-retention)
	removed, err := uc.opRepo.DeleteTerminalBefore(cutoff)
	if err != nil {
		return 0, fmt.Errorf("barrido de cola: %w", err)
	}
	uc.log.Info().
		Int64("removed", removed).
		Dur("retention", retention).
		Msg("barrido de operaciones terminales completado")
	return removed, nil
}

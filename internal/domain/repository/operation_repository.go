package repository

import (
	"time"

	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
)

// OperationRepository define el puerto del log de operaciones (append-only,
// multi-productor). Cada Create es un insert independiente sin lectura previa,
// por lo que productores concurrentes nunca compiten entre sí.
type OperationRepository interface {
	// Create agrega la operación con status PENDING. El store asigna
	// EnqueuedAt (monótono, clave única de orden) y lo deja en op.
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	// ListPending devuelve todas las operaciones PENDING, para el motor.
	ListPending() ([]*entity.Operation, error)
	// MarkTerminal escribe el resultado terminal (SUCCESS o FAILED) una sola
	// vez. Si la operación ya es terminal retorna domain.ErrAlreadyTerminal.
	MarkTerminal(id, status string, processedAt time.Time, errMsg string) error
	// DeleteTerminalBefore elimina operaciones terminales con processed_at
	// anterior a cutoff. Nunca toca operaciones PENDING.
	DeleteTerminalBefore(cutoff time.Time) (int64, error)
	// ListRecent lista operaciones (cualquier estado) para dashboards.
	ListRecent(limit, offset int) ([]*entity.Operation, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación del log de operaciones sobre PostgreSQL
// (usable con pool o tx). La tabla stock_operations es la cola: inserts
// independientes de los productores, enqueued_at asignado por el servidor.
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

const operationColumns = `id, kind, element_id, location_id, from_location_id, to_location_id,
		quantity, note, status, enqueued_at, processed_at, error`

// Create agrega la operación con status PENDING. El servidor asigna
// enqueued_at con clock_timestamp() y se devuelve en op.EnqueuedAt.
func (r *OperationRepo) Create(op *entity.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_operations (id, kind, element_id, location_id, from_location_id, to_location_id, quantity, note, status, enqueued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, clock_timestamp())
		RETURNING enqueued_at`
	err := r.q.QueryRow(context.Background(), query,
		op.ID, op.Kind, op.ElementID, nullable(op.LocationID), nullable(op.FromLocationID),
		nullable(op.ToLocationID), op.Quantity, op.Note, entity.OperationStatusPending,
	).Scan(&op.EnqueuedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: operación %s", domain.ErrDuplicate, op.ID)
		}
		return fmt.Errorf("create operation: %w", err)
	}
	op.Status = entity.OperationStatusPending
	return nil
}

// GetByID obtiene una operación por ID.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM stock_operations WHERE id = $1`
	op, err := scanOperation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	return op, nil
}

// ListPending devuelve todas las operaciones PENDING para el motor, ya
// ordenadas por (enqueued_at, id).
func (r *OperationRepo) ListPending() ([]*entity.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM stock_operations WHERE status = $1
		ORDER BY enqueued_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, entity.OperationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending operations: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// MarkTerminal escribe el resultado terminal una sola vez: el UPDATE exige
// status PENDING, con lo que un segundo intento no afecta filas y se reporta
// como violación de invariante (domain.ErrAlreadyTerminal).
func (r *OperationRepo) MarkTerminal(id, status string, processedAt time.Time, errMsg string) error {
	if status != entity.OperationStatusSuccess && status != entity.OperationStatusFailed {
		return fmt.Errorf("%w: status terminal inválido %q", domain.ErrInvalidInput, status)
	}
	query := `
		UPDATE stock_operations
		SET status = $2, processed_at = $3, error = $4
		WHERE id = $1 AND status = $5`
	cmd, err := r.q.Exec(context.Background(), query, id, status, processedAt, errMsg, entity.OperationStatusPending)
	if err != nil {
		return fmt.Errorf("mark operation terminal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: operación %s", domain.ErrNotFound, id)
		}
		return fmt.Errorf("%w: operación %s ya es %s", domain.ErrAlreadyTerminal, id, existing.Status)
	}
	return nil
}

// DeleteTerminalBefore elimina operaciones terminales con processed_at
// anterior a cutoff. El predicado de status excluye PENDING siempre.
func (r *OperationRepo) DeleteTerminalBefore(cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM stock_operations
		WHERE status IN ($1, $2) AND processed_at < $3`
	cmd, err := r.q.Exec(context.Background(), query,
		entity.OperationStatusSuccess, entity.OperationStatusFailed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete terminal operations: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListRecent lista operaciones de cualquier estado, más recientes primero.
func (r *OperationRepo) ListRecent(limit, offset int) ([]*entity.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM stock_operations
		ORDER BY enqueued_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent operations: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// nullable convierte "" a NULL para columnas de ubicación opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanOperation(row pgx.Row) (*entity.Operation, error) {
	var op entity.Operation
	var locationID, fromLocationID, toLocationID, note, errMsg *string
	if err := row.Scan(
		&op.ID, &op.Kind, &op.ElementID, &locationID, &fromLocationID, &toLocationID,
		&op.Quantity, &note, &op.Status, &op.EnqueuedAt, &op.ProcessedAt, &errMsg,
	); err != nil {
		return nil, err
	}
	if locationID != nil {
		op.LocationID = *locationID
	}
	if fromLocationID != nil {
		op.FromLocationID = *fromLocationID
	}
	if toLocationID != nil {
		op.ToLocationID = *toLocationID
	}
	if note != nil {
		op.Note = *note
	}
	if errMsg != nil {
		op.Error = *errMsg
	}
	return &op, nil
}

func collectOperations(rows pgx.Rows) ([]*entity.Operation, error) {
	var list []*entity.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

package stockops

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
	"github.com/jhoicas/RestoStock-api/pkg/logger"
)

// txConflictRetries reintentos ante conflicto de serialización antes de marcar
// la operación como FAILED con ErrTransactionConflict.
const txConflictRetries = 3

// OperationError error por operación dentro del resumen de un pase.
type OperationError struct {
	OperationID string `json:"operation_id"`
	Message     string `json:"message"`
}

// RunResult resumen agregado de un pase de ejecución.
type RunResult struct {
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	Errors       []OperationError `json:"errors,omitempty"`
}

// ExecuteOperationsUseCase es el motor de ejecución: drena el backlog PENDING
// en orden cronológico (enqueued_at, empates por id) y aplica cada operación
// al ledger en su propia transacción. El alcance atómico es exactamente la(s)
// celda(s) tocadas: una para ENTREE/SORTIE, dos para TRANSFERT; operaciones
// sobre celdas distintas no se bloquean entre sí.
//
// Se asume un solo ejecutor activo por ventana de invocación.
type ExecuteOperationsUseCase struct {
	txRunner TxRunner
	opRepo   repository.OperationRepository
	log      *logger.Logger
}

// NewExecuteOperationsUseCase construye el motor.
func NewExecuteOperationsUseCase(txRunner TxRunner, opRepo repository.OperationRepository, log *logger.Logger) *ExecuteOperationsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExecuteOperationsUseCase{txRunner: txRunner, opRepo: opRepo, log: log}
}

// Run ejecuta un pase completo: lee todo el backlog PENDING, lo ordena y
// aplica una operación a la vez. Una operación que falla por regla de negocio
// o por conflicto nunca bloquea ni invalida el resto del lote; Run solo
// retorna error ante fallos estructurales (no poder listar el backlog, o la
// violación de invariante ErrAlreadyTerminal).
func (uc *ExecuteOperationsUseCase) Run(ctx context.Context) (*RunResult, error) {
	pending, err := uc.opRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("listar operaciones pendientes: %w", err)
	}

	// Orden determinista: enqueued_at ascendente, empates por id.
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].EnqueuedAt.Equal(pending[j].EnqueuedAt) {
			return pending[i].ID < pending[j].ID
		}
		return pending[i].EnqueuedAt.Before(pending[j].EnqueuedAt)
	})

	result := &RunResult{}
	for _, op := range pending {
		applyErr := uc.applyWithRetry(ctx, op)
		if applyErr == nil {
			result.SuccessCount++
			continue
		}
		if errors.Is(applyErr, domain.ErrAlreadyTerminal) {
			// Violación de invariante: el estado terminal se escribe una sola
			// vez. Abortamos el pase en vez de continuar sobre datos corruptos.
			return result, fmt.Errorf("operación %s: %w", op.ID, applyErr)
		}

		if err := uc.opRepo.MarkTerminal(op.ID, entity.OperationStatusFailed, time.Now(), applyErr.Error()); err != nil {
			if errors.Is(err, domain.ErrAlreadyTerminal) {
				return result, fmt.Errorf("operación %s: %w", op.ID, err)
			}
			// No se pudo persistir el FAILED: se reporta y se continúa; la
			// operación sigue PENDING y la recogerá el próximo pase.
			uc.log.Error().Err(err).Str("operation_id", op.ID).Msg("no se pudo marcar operación como FAILED")
			result.Errors = append(result.Errors, OperationError{OperationID: op.ID, Message: err.Error()})
			continue
		}
		result.FailedCount++
		result.Errors = append(result.Errors, OperationError{OperationID: op.ID, Message: applyErr.Error()})
		uc.log.Warn().
			Str("operation_id", op.ID).
			Str("kind", op.Kind).
			Str("error", applyErr.Error()).
			Msg("operación fallida")
	}

	uc.log.Info().
		Int("pending", len(pending)).
		Int("success", result.SuccessCount).
		Int("failed", result.FailedCount).
		Msg("pase de ejecución completado")
	return result, nil
}

// applyWithRetry aplica la operación en una transacción; ante conflicto de
// serialización reintenta hasta txConflictRetries veces antes de rendirse con
// ErrTransactionConflict. La mutación del ledger y el MarkTerminal(SUCCESS)
// confirman en la misma transacción: o ambos o ninguno.
func (uc *ExecuteOperationsUseCase) applyWithRetry(ctx context.Context, op *entity.Operation) error {
	var lastErr error
	for attempt := 0; attempt <= txConflictRetries; attempt++ {
		lastErr = uc.txRunner.Run(ctx, func(
			opRepo repository.OperationRepository,
			stockRepo repository.StockRepository,
		) error {
			if err := applyMutation(op, stockRepo); err != nil {
				return err
			}
			return opRepo.MarkTerminal(op.ID, entity.OperationStatusSuccess, time.Now(), "")
		})
		if lastErr == nil || !errors.Is(lastErr, domain.ErrTransactionConflict) {
			return lastErr
		}
		uc.log.Debug().Str("operation_id", op.ID).Int("attempt", attempt+1).Msg("reintento por conflicto de transacción")
	}
	return lastErr
}

// applyMutation aplica la mutación del ledger según el tipo de operación,
// dentro de la transacción del caller. El chequeo de no-negatividad se hace
// contra la cantidad leída con FOR UPDATE en esta misma transacción.
func applyMutation(op *entity.Operation, stockRepo repository.StockRepository) error {
	now := time.Now()
	switch op.Kind {
	case entity.OperationKindEntree:
		cell, err := stockRepo.GetForUpdate(op.ElementID, op.LocationID)
		if err != nil {
			return err
		}
		cell.Quantity = cell.Quantity.Add(op.Quantity)
		cell.UpdatedAt = now
		return stockRepo.Upsert(cell)

	case entity.OperationKindSortie:
		cell, err := stockRepo.GetForUpdate(op.ElementID, op.LocationID)
		if err != nil {
			return err
		}
		if cell.Quantity.LessThan(op.Quantity) {
			return fmt.Errorf("%w: elemento %s en %s (disponible %s, solicitado %s)",
				domain.ErrInsufficientStock, op.ElementID, op.LocationID,
				cell.Quantity.String(), op.Quantity.String())
		}
		cell.Quantity = cell.Quantity.Sub(op.Quantity)
		cell.UpdatedAt = now
		return stockRepo.Upsert(cell)

	case entity.OperationKindTransfert:
		origin, err := stockRepo.GetForUpdate(op.ElementID, op.FromLocationID)
		if err != nil {
			return err
		}
		if origin.Quantity.LessThan(op.Quantity) {
			return fmt.Errorf("%w: elemento %s en %s (disponible %s, solicitado %s)",
				domain.ErrInsufficientStock, op.ElementID, op.FromLocationID,
				origin.Quantity.String(), op.Quantity.String())
		}
		dest, err := stockRepo.Get(op.ElementID, op.ToLocationID)
		if err != nil {
			return err
		}
		// Débito en origen y crédito en destino en la misma transacción:
		// nunca queda visible un estado debitado-sin-acreditar.
		origin.Quantity = origin.Quantity.Sub(op.Quantity)
		dest.Quantity = dest.Quantity.Add(op.Quantity)
		origin.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		return stockRepo.Upsert(dest)
	}
	return fmt.Errorf("%w: tipo de operación desconocido %q", domain.ErrInvalidInput, op.Kind)
}

package repository

import "github.com/jhoicas/RestoStock-api/internal/domain/entity"

// StockRepository define el puerto del ledger: una celda (elemento, ubicación)
// con cantidad no negativa. Usado dentro de transacciones para garantizar
// consistencia; una celda inexistente se lee como cantidad cero.
type StockRepository interface {
	Get(elementID, locationID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). El chequeo
	// de stock suficiente se hace contra la cantidad leída aquí, en la misma
	// transacción que la mutación (sin carrera check-then-act).
	GetForUpdate(elementID, locationID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// ListByLocation devuelve el snapshot de todas las celdas de una ubicación
	// (solo lectura, para listados).
	ListByLocation(locationID string) ([]*entity.Stock, error)
}

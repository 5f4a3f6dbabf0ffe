package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación de stock. Los nombres en francés vienen del protocolo
// original de los formularios del restaurante y se conservan en el wire.
const (
	OperationKindEntree    = "ENTREE"    // entrada de stock
	OperationKindSortie    = "SORTIE"    // salida de stock
	OperationKindTransfert = "TRANSFERT" // traslado entre ubicaciones
)

// Estados de una operación. La transición PENDING -> {SUCCESS, FAILED} ocurre
// exactamente una vez; no hay reintento automático de operaciones FAILED.
const (
	OperationStatusPending = "PENDING"
	OperationStatusSuccess = "SUCCESS"
	OperationStatusFailed  = "FAILED"
)

// Operation representa una operación de stock encolada: la unidad de trabajo
// del motor. EnqueuedAt lo asigna el store al insertar y es la única clave de
// orden (empates por ID). Solo el motor de ejecución escribe Status,
// ProcessedAt y Error; solo el janitor elimina entradas terminales.
type Operation struct {
	ID             string
	Kind           string
	ElementID      string
	LocationID     string // ENTREE / SORTIE
	FromLocationID string // TRANSFERT: origen
	ToLocationID   string // TRANSFERT: destino
	Quantity       decimal.Decimal
	Note           string
	Status         string
	EnqueuedAt     time.Time
	ProcessedAt    *time.Time
	Error          string
}

// IsTerminal indica si la operación ya alcanzó un estado terminal.
func (o *Operation) IsTerminal() bool {
	return o.Status == OperationStatusSuccess || o.Status == OperationStatusFailed
}

// ValidOperationKind indica si el tipo es uno de los conocidos.
func ValidOperationKind(k string) bool {
	switch k {
	case OperationKindEntree, OperationKindSortie, OperationKindTransfert:
		return true
	}
	return false
}

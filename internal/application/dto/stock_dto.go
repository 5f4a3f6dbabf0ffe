package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnqueueOperationRequest body para POST /api/stock/operations.
// Para ENTREE/SORTIE usar location_id; para TRANSFERT usar from/to_location_id.
type EnqueueOperationRequest struct {
	Kind           string          `json:"kind"`
	ElementID      string          `json:"element_id"`
	LocationID     string          `json:"location_id,omitempty"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Note           string          `json:"note,omitempty"`
}

// OperationResponse representación de una operación encolada o procesada.
type OperationResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	ElementID      string          `json:"element_id"`
	LocationID     string          `json:"location_id,omitempty"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Note           string          `json:"note,omitempty"`
	Status         string          `json:"status"`
	EnqueuedAt     time.Time       `json:"enqueued_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// OperationListResponse listado paginado de operaciones.
type OperationListResponse struct {
	Items []OperationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// SweepResponse resultado del barrido del janitor.
type SweepResponse struct {
	RemovedCount int64 `json:"removed_count"`
}

// StockLevelDTO una celda del ledger enriquecida con datos del catálogo.
type StockLevelDTO struct {
	ElementID   string          `json:"element_id"`
	ElementName string          `json:"element_name"`
	LocationID  string          `json:"location_id"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	BelowAlert  bool            `json:"below_alert"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la celda del ledger: la cantidad actual de un elemento en
// una ubicación. Invariante: Quantity >= 0 después de cada mutación individual,
// nunca solo "eventualmente".
type Stock struct {
	ElementID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

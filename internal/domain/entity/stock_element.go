package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de elementos de stock del catálogo.
const (
	ElementCategoryIngredient = "ingredient" // ingrediente de cocina
	ElementCategoryConsumable = "consumable" // consumible (servilletas, vasos...)
	ElementCategoryPerishable = "perishable" // perecedero
	ElementCategoryEquipment  = "equipment"  // equipamiento
	ElementCategoryPackaging  = "packaging"  // empaques
)

// StockElement representa un elemento del catálogo de stock del restaurante.
// El catálogo es de solo lectura para el motor de operaciones; las cantidades
// por ubicación viven en la tabla stock (ledger).
type StockElement struct {
	ID             string
	Name           string
	Category       string
	Unit           string          // unidad de medida (kg, l, unidad...)
	AlertThreshold decimal.Decimal // umbral bajo el cual se marca alerta en los listados
	UnitPrice      decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidCategory indica si la categoría es una de las conocidas.
func ValidCategory(c string) bool {
	switch c {
	case ElementCategoryIngredient, ElementCategoryConsumable, ElementCategoryPerishable,
		ElementCategoryEquipment, ElementCategoryPackaging:
		return true
	}
	return false
}

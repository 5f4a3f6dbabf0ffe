package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateElementRequest body para POST /api/elements.
type CreateElementRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// UpdateElementRequest body para PUT /api/elements/:id (campos opcionales).
type UpdateElementRequest struct {
	Name           *string          `json:"name,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

// ElementResponse representación de un elemento del catálogo.
type ElementResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ElementListResponse listado paginado de elementos.
type ElementListResponse struct {
	Items []ElementResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateLocationRequest body para PUT /api/locations/:id.
type UpdateLocationRequest struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse listado paginado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

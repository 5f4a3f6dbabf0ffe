package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

var _ repository.StockElementRepository = (*StockElementRepo)(nil)

// StockElementRepo implementación del catálogo de elementos sobre PostgreSQL.
type StockElementRepo struct {
	q Querier
}

// NewStockElementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockElementRepository(q Querier) *StockElementRepo {
	return &StockElementRepo{q: q}
}

// Create persiste un nuevo elemento de catálogo.
func (r *StockElementRepo) Create(element *entity.StockElement) error {
	query := `
		INSERT INTO stock_elements (id, name, category, unit, alert_threshold, unit_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		element.ID, element.Name, element.Category, element.Unit,
		element.AlertThreshold, element.UnitPrice, element.Active,
		element.CreatedAt, element.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: elemento %s", domain.ErrDuplicate, element.Name)
		}
		return fmt.Errorf("insert stock element: %w", err)
	}
	return nil
}

// GetByID obtiene un elemento por ID.
func (r *StockElementRepo) GetByID(id string) (*entity.StockElement, error) {
	query := `
		SELECT id, name, category, unit, alert_threshold, unit_price, active, created_at, updated_at
		FROM stock_elements WHERE id = $1`
	var e entity.StockElement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Category, &e.Unit, &e.AlertThreshold,
		&e.UnitPrice, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock element: %w", err)
	}
	return &e, nil
}

// Update actualiza un elemento existente.
func (r *StockElementRepo) Update(element *entity.StockElement) error {
	query := `
		UPDATE stock_elements
		SET name = $2, category = $3, unit = $4, alert_threshold = $5, unit_price = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		element.ID, element.Name, element.Category, element.Unit,
		element.AlertThreshold, element.UnitPrice, element.Active, element.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock element: %w", err)
	}
	return nil
}

// List lista elementos con paginación.
func (r *StockElementRepo) List(limit, offset int) ([]*entity.StockElement, error) {
	query := `
		SELECT id, name, category, unit, alert_threshold, unit_price, active, created_at, updated_at
		FROM stock_elements ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock elements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockElement
	for rows.Next() {
		var e entity.StockElement
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Unit, &e.AlertThreshold,
			&e.UnitPrice, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock element: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

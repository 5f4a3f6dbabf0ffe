package repository

import "github.com/jhoicas/RestoStock-api/internal/domain/entity"

// StockElementRepository define el puerto de persistencia para el catálogo de
// elementos de stock. El motor de operaciones solo lo lee.
type StockElementRepository interface {
	Create(element *entity.StockElement) error
	GetByID(id string) (*entity.StockElement, error)
	Update(element *entity.StockElement) error
	List(limit, offset int) ([]*entity.StockElement, error)
}

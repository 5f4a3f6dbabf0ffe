package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/RestoStock-api/internal/application/dto"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
	"github.com/jhoicas/RestoStock-api/internal/domain/repository"
)

// ElementUseCase casos de uso CRUD para el catálogo de elementos de stock.
// El catálogo es externo al motor: este caso de uso nunca toca el ledger.
type ElementUseCase struct {
	repo repository.StockElementRepository
}

// NewElementUseCase construye el caso de uso.
func NewElementUseCase(repo repository.StockElementRepository) *ElementUseCase {
	return &ElementUseCase{repo: repo}
}

// Create crea un nuevo elemento de catálogo (activo por defecto).
func (uc *ElementUseCase) Create(in dto.CreateElementRequest) (*dto.ElementResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	now := time.Now()
	element := &entity.StockElement{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       in.Category,
		Unit:           in.Unit,
		AlertThreshold: in.AlertThreshold,
		UnitPrice:      in.UnitPrice,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(element); err != nil {
		return nil, err
	}
	return toElementResponse(element), nil
}

// GetByID obtiene un elemento por ID.
func (uc *ElementUseCase) GetByID(id string) (*dto.ElementResponse, error) {
	element, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, nil
	}
	return toElementResponse(element), nil
}

// Update actualiza campos del elemento (incluida la bandera de activo).
func (uc *ElementUseCase) Update(id string, in dto.UpdateElementRequest) (*dto.ElementResponse, error) {
	element, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, nil
	}
	if in.Name != nil {
		element.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		element.Category = *in.Category
	}
	if in.Unit != nil {
		element.Unit = *in.Unit
	}
	if in.AlertThreshold != nil {
		element.AlertThreshold = *in.AlertThreshold
	}
	if in.UnitPrice != nil {
		element.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		element.Active = *in.Active
	}
	element.UpdatedAt = time.Now()
	if err := uc.repo.Update(element); err != nil {
		return nil, err
	}
	return toElementResponse(element), nil
}

// List lista elementos con paginación.
func (uc *ElementUseCase) List(limit, offset int) (*dto.ElementListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ElementResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toElementResponse(e))
	}
	return &dto.ElementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toElementResponse(e *entity.StockElement) *dto.ElementResponse {
	if e == nil {
		return nil
	}
	return &dto.ElementResponse{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Unit:           e.Unit,
		AlertThreshold: e.AlertThreshold,
		UnitPrice:      e.UnitPrice,
		Active:         e.Active,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

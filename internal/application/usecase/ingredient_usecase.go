package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
	"github.com/tu-usuario/resto-pro/pkg/search"
)

// IngredientUseCase casos de uso CRUD para ingredientes. El saldo corriente
// solo se modifica vía movimientos; aquí se fija únicamente el stock inicial.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create registra un ingrediente con su stock inicial y umbral de reposición.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock.IsNegative() || in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Unit:            in.Unit,
		CurrentStock:    in.CurrentStock,
		ReorderLevel:    in.ReorderLevel,
		SupplierName:    in.SupplierName,
		SupplierContact: in.SupplierContact,
		Notes:           in.Notes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// GetByID obtiene un ingrediente.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return toIngredientResponse(ing), nil
}

// Update edita datos maestros. current_stock no se toca aquí: solo cambia
// vía movimientos o corrección explícita del motor.
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	if !entity.ValidUnit(in.Unit) || in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	ing.Name = in.Name
	ing.Unit = in.Unit
	ing.ReorderLevel = in.ReorderLevel
	ing.SupplierName = in.SupplierName
	ing.SupplierContact = in.SupplierContact
	ing.Notes = in.Notes
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// Toggle invierte is_active (PATCH :id/toggle).
func (uc *IngredientUseCase) Toggle(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetActive(id, !ing.IsActive); err != nil {
		return nil, err
	}
	ing.IsActive = !ing.IsActive
	return toIngredientResponse(ing), nil
}

// List lista ingredientes con paginación. El filtro ?search= se pliega sin
// tildes en memoria; con término de búsqueda se filtra ANTES de paginar, para
// que una página nunca pierda coincidencias que quedaron fuera del LIMIT.
func (uc *IngredientUseCase) List(onlyActive bool, searchTerm string, limit, offset int) ([]dto.IngredientResponse, error) {
	if searchTerm == "" {
		list, err := uc.repo.List(onlyActive, limit, offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.IngredientResponse, 0, len(list))
		for _, ing := range list {
			out = append(out, *toIngredientResponse(ing))
		}
		return out, nil
	}

	list, err := uc.repo.List(onlyActive, 0, 0)
	if err != nil {
		return nil, err
	}
	matched := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		if !search.Matches(ing.Name, searchTerm) && !search.Matches(ing.SupplierName, searchTerm) {
			continue
		}
		matched = append(matched, *toIngredientResponse(ing))
	}
	return paginate(matched, limit, offset), nil
}

// paginate aplica limit/offset sobre una lista ya filtrada en memoria.
// Con limit <= 0 devuelve todo desde offset.
func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// Delete elimina el ingrediente; sus movimientos caen en cascada (FK).
func (uc *IngredientUseCase) Delete(id string) error {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		Unit:            i.Unit,
		CurrentStock:    i.CurrentStock,
		ReorderLevel:    i.ReorderLevel,
		SupplierName:    i.SupplierName,
		SupplierContact: i.SupplierContact,
		Notes:           i.Notes,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

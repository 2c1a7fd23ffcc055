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

// MenuItemUseCase casos de uso para ítems del menú y para el menú público
// del storefront (categorías activas con sus ítems disponibles).
type MenuItemUseCase struct {
	itemRepo     repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(itemRepo repository.MenuItemRepository, categoryRepo repository.CategoryRepository) *MenuItemUseCase {
	return &MenuItemUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// Create publica un ítem nuevo (disponible por defecto) en una categoría existente.
func (uc *MenuItemUseCase) Create(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
		IsFeatured:  in.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID obtiene un ítem.
func (uc *MenuItemUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuItemResponse(item), nil
}

// Update edita un ítem existente.
func (uc *MenuItemUseCase) Update(id string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.CategoryID = in.CategoryID
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.ImageURL = in.ImageURL
	item.IsFeatured = in.IsFeatured
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// ToggleAvailability invierte is_available (PATCH :id/toggle).
func (uc *MenuItemUseCase) ToggleAvailability(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.itemRepo.SetAvailable(id, !item.IsAvailable); err != nil {
		return nil, err
	}
	item.IsAvailable = !item.IsAvailable
	return toMenuItemResponse(item), nil
}

// List listado admin con filtros de categoría y disponibilidad.
func (uc *MenuItemUseCase) List(categoryID string, onlyAvailable bool, limit, offset int) ([]dto.MenuItemResponse, error) {
	items, err := uc.itemRepo.List(categoryID, onlyAvailable, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toMenuItemResponse(it))
	}
	return out, nil
}

// Delete elimina un ítem.
func (uc *MenuItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// PublicMenu arma el menú del storefront: categorías activas en display_order
// con sus ítems disponibles. searchTerm filtra por nombre/descripción con
// plegado de tildes ("jalapeno" encuentra "Jalapeño").
func (uc *MenuItemUseCase) PublicMenu(searchTerm string) ([]dto.MenuCategoryDTO, error) {
	cats, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	menu := make([]dto.MenuCategoryDTO, 0, len(cats))
	for _, cat := range cats {
		items, err := uc.itemRepo.List(cat.ID, true, 500, 0)
		if err != nil {
			return nil, err
		}
		dtoItems := make([]dto.MenuItemResponse, 0, len(items))
		for _, it := range items {
			if !search.Matches(it.Name, searchTerm) && !search.Matches(it.Description, searchTerm) {
				continue
			}
			dtoItems = append(dtoItems, *toMenuItemResponse(it))
		}
		if searchTerm != "" && len(dtoItems) == 0 {
			continue
		}
		menu = append(menu, dto.MenuCategoryDTO{
			ID:           cat.ID,
			Name:         cat.Name,
			Description:  cat.Description,
			DisplayOrder: cat.DisplayOrder,
			Items:        dtoItems,
		})
	}
	return menu, nil
}

func toMenuItemResponse(i *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:          i.ID,
		CategoryID:  i.CategoryID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImageURL:    i.ImageURL,
		IsAvailable: i.IsAvailable,
		IsFeatured:  i.IsFeatured,
		CreatedAt:   i.CreatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// TableUseCase casos de uso CRUD para las mesas del salón.
type TableUseCase struct {
	repo repository.TableRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(repo repository.TableRepository) *TableUseCase {
	return &TableUseCase{repo: repo}
}

// Create crea una mesa; el número debe ser único en el salón.
func (uc *TableUseCase) Create(in dto.CreateTableRequest) (*dto.TableResponse, error) {
	existing, _ := uc.repo.GetByNumber(in.Number)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	t := &entity.Table{
		ID:        uuid.New().String(),
		Number:    in.Number,
		Capacity:  in.Capacity,
		Status:    entity.TableFree,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// GetByID obtiene una mesa.
func (uc *TableUseCase) GetByID(id string) (*dto.TableResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTableResponse(t), nil
}

// Update edita número y capacidad.
func (uc *TableUseCase) Update(id string, in dto.CreateTableRequest) (*dto.TableResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number != t.Number {
		existing, _ := uc.repo.GetByNumber(in.Number)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	t.Number = in.Number
	t.Capacity = in.Capacity
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// SetStatus cambia el estado de la mesa (free, occupied, reserved).
func (uc *TableUseCase) SetStatus(id, status string) (*dto.TableResponse, error) {
	if status != entity.TableFree && status != entity.TableOccupied && status != entity.TableReserved {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetStatus(id, status); err != nil {
		return nil, err
	}
	t.Status = status
	return toTableResponse(t), nil
}

// List lista todas las mesas ordenadas por número.
func (uc *TableUseCase) List() ([]dto.TableResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TableResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTableResponse(t))
	}
	return out, nil
}

// Delete elimina una mesa.
func (uc *TableUseCase) Delete(id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{
		ID:       t.ID,
		Number:   t.Number,
		Capacity: t.Capacity,
		Status:   t.Status,
	}
}

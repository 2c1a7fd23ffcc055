package usecase

import (
	"time"

	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
	"github.com/tu-usuario/resto-pro/pkg/search"
)

// CustomerUseCase operaciones de back office sobre clientes registrados.
// El alta de clientes vive en el caso de uso de autenticación.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// Update edita nombre, teléfono y estado desde el back office.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Phone = in.Phone
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes con paginación y filtro por nombre o email. Igual que
// en ingredientes, con búsqueda se filtra antes de paginar.
func (uc *CustomerUseCase) List(searchTerm string, limit, offset int) ([]dto.CustomerResponse, error) {
	if searchTerm == "" {
		list, err := uc.repo.List(limit, offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			out = append(out, *toCustomerResponse(c))
		}
		return out, nil
	}

	list, err := uc.repo.List(0, 0)
	if err != nil {
		return nil, err
	}
	matched := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if !search.Matches(c.Name, searchTerm) && !search.Matches(c.Email, searchTerm) {
			continue
		}
		matched = append(matched, *toCustomerResponse(c))
	}
	return paginate(matched, limit, offset), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

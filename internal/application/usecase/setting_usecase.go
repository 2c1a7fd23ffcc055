package usecase

import (
	"time"

	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// SettingUseCase pares clave/valor de configuración del restaurante. Los
// marcados como públicos se exponen sin autenticación al storefront.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get obtiene un setting por clave.
func (uc *SettingUseCase) Get(key string) (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingResponse(s), nil
}

// Upsert crea o reemplaza un setting.
func (uc *SettingUseCase) Upsert(in dto.SettingRequest) (*dto.SettingResponse, error) {
	s := &entity.Setting{
		Key:       in.Key,
		Value:     in.Value,
		IsPublic:  in.IsPublic,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	return toSettingResponse(s), nil
}

// List lista settings; onlyPublic restringe a los visibles sin autenticación.
func (uc *SettingUseCase) List(onlyPublic bool) ([]dto.SettingResponse, error) {
	list, err := uc.repo.List(onlyPublic)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSettingResponse(s))
	}
	return out, nil
}

// Delete elimina un setting por clave.
func (uc *SettingUseCase) Delete(key string) error {
	s, err := uc.repo.Get(key)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(key)
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		IsPublic:  s.IsPublic,
		UpdatedAt: s.UpdatedAt,
	}
}

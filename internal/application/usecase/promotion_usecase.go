package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// PromotionUseCase casos de uso CRUD para promociones y cálculo del descuento
// aplicable a un pedido.
type PromotionUseCase struct {
	repo repository.PromotionRepository
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(repo repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{repo: repo}
}

// Create crea una promoción; el código se guarda en mayúsculas y debe ser único.
func (uc *PromotionUseCase) Create(in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if in.DiscountType != entity.DiscountPercent && in.DiscountType != entity.DiscountFixed {
		return nil, domain.ErrInvalidInput
	}
	if !in.DiscountValue.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountType == entity.DiscountPercent && in.DiscountValue.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	existing, _ := uc.repo.GetByCode(code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	promo := &entity.Promotion{
		ID:            uuid.New().String(),
		Code:          code,
		Description:   in.Description,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		StartsAt:      in.StartsAt,
		EndsAt:        in.EndsAt,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(promo); err != nil {
		return nil, err
	}
	return toPromotionResponse(promo), nil
}

// GetByID obtiene una promoción.
func (uc *PromotionUseCase) GetByID(id string) (*dto.PromotionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPromotionResponse(p), nil
}

// Update edita una promoción existente (el código no cambia).
func (uc *PromotionUseCase) Update(id string, in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Description = in.Description
	p.DiscountType = in.DiscountType
	p.DiscountValue = in.DiscountValue
	p.StartsAt = in.StartsAt
	p.EndsAt = in.EndsAt
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPromotionResponse(p), nil
}

// Toggle invierte is_active.
func (uc *PromotionUseCase) Toggle(id string) (*dto.PromotionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetActive(id, !p.IsActive); err != nil {
		return nil, err
	}
	p.IsActive = !p.IsActive
	return toPromotionResponse(p), nil
}

// List lista promociones con paginación.
func (uc *PromotionUseCase) List(limit, offset int) ([]dto.PromotionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPromotionResponse(p))
	}
	return out, nil
}

// Delete elimina una promoción.
func (uc *PromotionUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Discount calcula el descuento de un código sobre un subtotal, validando
// vigencia. Porcentual: subtotal*valor/100 (2 decimales); fijo: min(valor, subtotal).
func Discount(promo *entity.Promotion, subtotal decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	if promo == nil || !promo.ActiveAt(at) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if promo.DiscountType == entity.DiscountPercent {
		return subtotal.Mul(promo.DiscountValue).Div(hundred).Round(2), nil
	}
	if promo.DiscountValue.GreaterThan(subtotal) {
		return subtotal, nil
	}
	return promo.DiscountValue, nil
}

func toPromotionResponse(p *entity.Promotion) *dto.PromotionResponse {
	return &dto.PromotionResponse{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		StartsAt:      p.StartsAt,
		EndsAt:        p.EndsAt,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

package repository

import "github.com/tu-usuario/resto-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para mercancía de venta directa.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	SetActive(id string, active bool) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}

// PromotionRepository define el puerto de persistencia para promociones.
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	GetByCode(code string) (*entity.Promotion, error)
	Update(promotion *entity.Promotion) error
	SetActive(id string, active bool) error
	List(limit, offset int) ([]*entity.Promotion, error)
	Delete(id string) error
}

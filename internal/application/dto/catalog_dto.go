package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest / UpdateCategoryRequest body para categorías.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

// CategoryResponse representación pública de una categoría.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateMenuItemRequest body para ítems del menú.
type CreateMenuItemRequest struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	IsFeatured  bool            `json:"is_featured"`
}

// MenuItemResponse representación pública de un ítem del menú.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
	IsFeatured  bool            `json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MenuCategoryDTO categoría con sus ítems disponibles (GET /api/menu).
type MenuCategoryDTO struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	DisplayOrder int                `json:"display_order"`
	Items        []MenuItemResponse `json:"items"`
}

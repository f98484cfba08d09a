package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRestaurantRequest entrada para crear un restaurante.
type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"img" validate:"omitempty,max=500"`
	Owner       string `json:"owner" validate:"required,uuid"`
}

// UpdateRestaurantRequest campos modificables (name, description, img, status).
// Cualquier otro campo del cuerpo se ignora.
type UpdateRestaurantRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Image       *string `json:"img" validate:"omitempty,max=500"`
	Status      *bool   `json:"status"`
}

// SearchByOwnerRequest filtro de búsqueda por dueño.
type SearchByOwnerRequest struct {
	Owner string `json:"owner" query:"owner" validate:"required,uuid"`
	PageRequest
}

// SearchByRateRequest filtro de búsqueda por calificación mínima aproximada.
// Rate es obligatorio.
type SearchByRateRequest struct {
	Rate *decimal.Decimal `json:"rate" query:"rate" validate:"required"`
	PageRequest
}

// RestaurantResponse restaurante con referencias (ids) a dueño y comentarios.
type RestaurantResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"img"`
	Owner       string          `json:"owner"`
	Status      bool            `json:"status"`
	Comments    []string        `json:"comments"`
	Rating      decimal.Decimal `json:"rating"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RestaurantDetailResponse restaurante expandido: dueño, comentarios con autor y reseña.
type RestaurantDetailResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Image       string                  `json:"img"`
	Owner       *UserResponse           `json:"owner"`
	Status      bool                    `json:"status"`
	Comments    []CommentDetailResponse `json:"comments"`
	Rating      decimal.Decimal         `json:"rating"`
	CreatedAt   time.Time               `json:"created_at"`
}

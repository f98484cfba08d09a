package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCommentRequest entrada para comentar un restaurante.
// Owner es el autor; se acepta también "user". Uno de los dos es obligatorio.
type CreateCommentRequest struct {
	Restaurant  string          `json:"restaurant" validate:"required,uuid"`
	Rate        decimal.Decimal `json:"rate"`
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Owner       string          `json:"owner" validate:"omitempty,uuid"`
	User        string          `json:"user" validate:"omitempty,uuid"`
}

// Author devuelve el id del autor indicado en la petición.
func (r CreateCommentRequest) Author() string {
	if r.Owner != "" {
		return r.Owner
	}
	return r.User
}

// UpdateCommentRequest campos modificables (rate, title, description, user, restaurant, opened, status).
type UpdateCommentRequest struct {
	Rate        *decimal.Decimal `json:"rate"`
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	User        *string          `json:"user" validate:"omitempty,uuid"`
	Restaurant  *string          `json:"restaurant" validate:"omitempty,uuid"`
	Opened      *bool            `json:"opened"`
	Status      *bool            `json:"status"`
}

// CommentResponse comentario con referencias (ids).
type CommentResponse struct {
	ID          string          `json:"id"`
	Rate        decimal.Decimal `json:"rate"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	User        string          `json:"user"`
	Restaurant  string          `json:"restaurant"`
	Opened      bool            `json:"opened"`
	Review      *string         `json:"review"`
	Status      bool            `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CommentDetailResponse comentario con autor y reseña expandidos.
type CommentDetailResponse struct {
	ID          string                `json:"id"`
	Rate        decimal.Decimal       `json:"rate"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	User        *UserResponse         `json:"user"`
	Restaurant  string                `json:"restaurant"`
	Opened      bool                  `json:"opened"`
	Review      *ReviewDetailResponse `json:"review"`
	Status      bool                  `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

// CommentCreatedResponse resultado de CreateComment.
type CommentCreatedResponse struct {
	Comment    CommentResponse
	Restaurant RestaurantResponse
}

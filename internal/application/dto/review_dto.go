package dto

import "time"

// CreateReviewRequest entrada para reseñar un comentario abierto.
type CreateReviewRequest struct {
	Comment     string `json:"comment" validate:"required,uuid"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Owner       string `json:"owner" validate:"required,uuid"`
}

// UpdateReviewRequest campos modificables (description, status, owner, comment).
type UpdateReviewRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=2000"`
	Status      *bool   `json:"status"`
	Owner       *string `json:"owner" validate:"omitempty,uuid"`
	Comment     *string `json:"comment" validate:"omitempty,uuid"`
}

// ReviewResponse reseña con referencias (ids).
type ReviewResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Comment     string    `json:"comment"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewDetailResponse reseña con el dueño expandido.
type ReviewDetailResponse struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Owner       *UserResponse `json:"owner"`
	Comment     string        `json:"comment"`
	Status      bool          `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ReviewCreatedResponse resultado de CreateReview.
type ReviewCreatedResponse struct {
	Comment CommentResponse
	Review  ReviewResponse
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant es un restaurante con su dueño y la lista ordenada de comentarios.
// CommentIDs solo crece (orden de inserción = orden de creación).
// Rating es el promedio de los comentarios activos.
type Restaurant struct {
	ID          string
	Name        string
	Description string
	Image       string
	OwnerID     string
	Status      bool
	CommentIDs  []string
	Rating      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasComment indica si commentID está en la lista del restaurante.
func (r *Restaurant) HasComment(commentID string) bool {
	for _, id := range r.CommentIDs {
		if id == commentID {
			return true
		}
	}
	return false
}

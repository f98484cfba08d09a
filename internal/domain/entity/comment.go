package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommentState estado del flujo de reseña de un comentario.
type CommentState string

// Un comentario nace OPEN y pasa a REVIEWED una sola vez.
const (
	CommentOpen     CommentState = "OPEN"
	CommentReviewed CommentState = "REVIEWED"
)

// Rango permitido para Comment.Rate.
var (
	MinRate = decimal.Zero
	MaxRate = decimal.NewFromInt(5)
)

// Comment es la opinión de un usuario sobre un restaurante.
// Opened=true mientras no exista Review; ReviewID se fija al reseñarlo.
type Comment struct {
	ID           string
	Rate         decimal.Decimal
	Title        string
	Description  string
	UserID       string
	RestaurantID string
	Opened       bool
	ReviewID     *string
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// State devuelve el estado del comentario en el flujo de reseña.
func (c *Comment) State() CommentState {
	if c.Opened {
		return CommentOpen
	}
	return CommentReviewed
}

// ValidRate indica si rate está dentro de [MinRate, MaxRate].
func ValidRate(rate decimal.Decimal) bool {
	return !rate.LessThan(MinRate) && !rate.GreaterThan(MaxRate)
}

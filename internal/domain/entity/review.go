package entity

import "time"

// Review es la respuesta del dueño (o de un admin) a un comentario abierto.
type Review struct {
	ID          string
	Description string
	OwnerID     string
	CommentID   string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

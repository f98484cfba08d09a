package repository

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
)

// CommentRepository define el puerto de persistencia para Comment (DIP).
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error)
	ListActive(ctx context.Context, page Page) ([]*entity.Comment, error)
	// FindByAuthor busca entre commentIDs un comentario de userID, activo o no.
	FindByAuthor(ctx context.Context, commentIDs []string, userID string) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	// MarkReviewed pasa opened de true a false y fija review_id.
	// Devuelve false si el comentario no estaba abierto.
	MarkReviewed(ctx context.Context, commentID, reviewID string) (bool, error)
	SoftDelete(ctx context.Context, id string) (*entity.Comment, error)
}

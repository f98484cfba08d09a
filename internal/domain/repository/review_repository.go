package repository

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para Review (DIP).
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Review, error)
	ListActive(ctx context.Context, page Page) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	SoftDelete(ctx context.Context, id string) (*entity.Review, error)
}

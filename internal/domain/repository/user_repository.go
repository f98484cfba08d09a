package repository

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas por ID o email devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
	ListActive(ctx context.Context, page Page) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// SoftDelete pone status=false y devuelve el usuario; (nil, nil) si no existe.
	SoftDelete(ctx context.Context, id string) (*entity.User, error)
}

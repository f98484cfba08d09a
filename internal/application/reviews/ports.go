package reviews

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ninguna escritura aplicada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		restaurantRepo repository.RestaurantRepository,
		commentRepo repository.CommentRepository,
		reviewRepo repository.ReviewRepository,
	) error) error
}

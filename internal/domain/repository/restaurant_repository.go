package repository

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RestaurantFilter filtros opcionales de listado. Los listados solo devuelven restaurantes activos.
type RestaurantFilter struct {
	OwnerID string
	// RatingAbove exige rating > RatingAbove (estricto).
	RatingAbove *decimal.Decimal
}

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	// GetByIDForUpdate lee y bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Restaurant, error)
	List(ctx context.Context, filter RestaurantFilter, page Page) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	// AppendComment agrega commentID al final de la lista de comentarios.
	AppendComment(ctx context.Context, restaurantID, commentID string) error
	// RefreshRating recalcula el promedio de los comentarios activos del restaurante.
	RefreshRating(ctx context.Context, restaurantID string) error
	SoftDelete(ctx context.Context, id string) (*entity.Restaurant, error)
}

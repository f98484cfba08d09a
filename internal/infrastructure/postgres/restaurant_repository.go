package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

const restaurantColumns = `id, name, description, img, owner_id, status, comment_ids, rating, created_at, updated_at`

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	db Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(db Querier) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, res *entity.Restaurant) error {
	commentIDs := res.CommentIDs
	if commentIDs == nil {
		commentIDs = []string{}
	}
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7::uuid[], $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		res.ID, res.Name, res.Description, res.Image, res.OwnerID, res.Status, commentIDs, res.Rating,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return mapError("insert restaurant", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID, activo o no.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
}

// GetByIDForUpdate igual que GetByID pero bloquea la fila (SELECT ... FOR UPDATE).
func (r *RestaurantRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Restaurant, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1 FOR UPDATE`, id)
}

func (r *RestaurantRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Restaurant, error) {
	res, err := scanRestaurant(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get restaurant", err)
	}
	return res, nil
}

// List lista restaurantes activos aplicando los filtros.
func (r *RestaurantRepo) List(ctx context.Context, filter repository.RestaurantFilter, page repository.Page) ([]*entity.Restaurant, error) {
	where := []string{"status"}
	var args []any
	if filter.OwnerID != "" {
		if !isUUID(filter.OwnerID) {
			return []*entity.Restaurant{}, nil
		}
		args = append(args, filter.OwnerID)
		where = append(where, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if filter.RatingAbove != nil {
		args = append(args, *filter.RatingAbove)
		where = append(where, fmt.Sprintf("rating > $%d", len(args)))
	}
	args = append(args, page.Limit, page.Skip)
	query := fmt.Sprintf(`
		SELECT %s FROM restaurants WHERE %s
		ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d`,
		restaurantColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list restaurants", err)
	}
	defer rows.Close()
	list := make([]*entity.Restaurant, 0)
	for rows.Next() {
		res, err := scanRestaurant(rows)
		if err != nil {
			return nil, mapError("scan restaurant", err)
		}
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list restaurants", err)
	}
	return list, nil
}

// Update actualiza los campos editables; comment_ids y rating los mantienen AppendComment y RefreshRating.
func (r *RestaurantRepo) Update(ctx context.Context, res *entity.Restaurant) error {
	query := `
		UPDATE restaurants SET name = $2, description = $3, img = $4, owner_id = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		res.ID, res.Name, res.Description, res.Image, res.OwnerID, res.Status, res.UpdatedAt,
	)
	if err != nil {
		return mapError("update restaurant", err)
	}
	return nil
}

// AppendComment agrega el comentario al final de comment_ids.
func (r *RestaurantRepo) AppendComment(ctx context.Context, restaurantID, commentID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurants SET comment_ids = array_append(comment_ids, $2::uuid), updated_at = now()
		WHERE id = $1`, restaurantID, commentID)
	if err != nil {
		return mapError("append comment", err)
	}
	return nil
}

// RefreshRating recalcula el rating como promedio de los comentarios activos (0 si no hay).
func (r *RestaurantRepo) RefreshRating(ctx context.Context, restaurantID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurants r SET rating = COALESCE((
			SELECT ROUND(AVG(c.rate), 2) FROM comments c
			WHERE c.id = ANY(r.comment_ids) AND c.status
		), 0)
		WHERE r.id = $1`, restaurantID)
	if err != nil {
		return mapError("refresh rating", err)
	}
	return nil
}

// SoftDelete marca el restaurante como inactivo.
func (r *RestaurantRepo) SoftDelete(ctx context.Context, id string) (*entity.Restaurant, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `
		UPDATE restaurants SET status = FALSE, updated_at = now()
		WHERE id = $1 RETURNING `+restaurantColumns, id)
}

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var res entity.Restaurant
	err := row.Scan(
		&res.ID, &res.Name, &res.Description, &res.Image, &res.OwnerID, &res.Status,
		&res.CommentIDs, &res.Rating, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

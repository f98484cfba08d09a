package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

const reviewColumns = `id, description, owner_id, comment_id, status, created_at, updated_at`

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	db Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(db Querier) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (`+reviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rv.ID, rv.Description, rv.OwnerID, rv.CommentID, rv.Status, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return mapError("insert review", err)
	}
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

func (r *ReviewRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get review", err)
	}
	return rv, nil
}

func (r *ReviewRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Review, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.Review{}, nil
	}
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = ANY($1::uuid[])`, ids)
}

func (r *ReviewRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Review, error) {
	return r.list(ctx, `
		SELECT `+reviewColumns+` FROM reviews WHERE status
		ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`, page.Limit, page.Skip)
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list reviews", err)
	}
	defer rows.Close()
	list := make([]*entity.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, mapError("scan review", err)
		}
		list = append(list, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list reviews", err)
	}
	return list, nil
}

func (r *ReviewRepo) Update(ctx context.Context, rv *entity.Review) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reviews SET description = $2, owner_id = $3, comment_id = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		rv.ID, rv.Description, rv.OwnerID, rv.CommentID, rv.Status, rv.UpdatedAt,
	)
	if err != nil {
		return mapError("update review", err)
	}
	return nil
}

func (r *ReviewRepo) SoftDelete(ctx context.Context, id string) (*entity.Review, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `
		UPDATE reviews SET status = FALSE, updated_at = now()
		WHERE id = $1 RETURNING `+reviewColumns, id)
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	if err := row.Scan(&rv.ID, &rv.Description, &rv.OwnerID, &rv.CommentID, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

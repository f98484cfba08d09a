package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

const commentColumns = `id, rate, title, description, user_id, restaurant_id, opened, review_id, status, created_at, updated_at`

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	db Querier
}

// NewCommentRepository construye el adaptador de persistencia para comentarios.
func NewCommentRepository(db Querier) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create persiste un nuevo comentario.
func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Rate, c.Title, c.Description, c.UserID, c.RestaurantID, c.Opened, c.ReviewID, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapError("insert comment", err)
	}
	return nil
}

// GetByID obtiene un comentario por ID, activo o no.
func (r *CommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
}

func (r *CommentRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get comment", err)
	}
	return c, nil
}

// ListByIDs devuelve los comentarios existentes entre ids.
func (r *CommentRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.Comment{}, nil
	}
	return r.list(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ANY($1::uuid[])`, ids)
}

// ListActive lista comentarios activos por fecha de creación.
func (r *CommentRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Comment, error) {
	return r.list(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE status
		ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`, page.Limit, page.Skip)
}

func (r *CommentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list comments", err)
	}
	defer rows.Close()
	list := make([]*entity.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, mapError("scan comment", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list comments", err)
	}
	return list, nil
}

// FindByAuthor busca un comentario de userID entre commentIDs, sin filtrar por status.
func (r *CommentRepo) FindByAuthor(ctx context.Context, commentIDs []string, userID string) (*entity.Comment, error) {
	commentIDs = validIDs(commentIDs)
	if len(commentIDs) == 0 || !isUUID(userID) {
		return nil, nil
	}
	return r.getOne(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE id = ANY($1::uuid[]) AND user_id = $2 LIMIT 1`, commentIDs, userID)
}

// Update actualiza un comentario.
func (r *CommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	query := `
		UPDATE comments SET rate = $2, title = $3, description = $4, user_id = $5, restaurant_id = $6,
			opened = $7, review_id = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Rate, c.Title, c.Description, c.UserID, c.RestaurantID, c.Opened, c.ReviewID, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return mapError("update comment", err)
	}
	return nil
}

// MarkReviewed cierra el comentario solo si sigue abierto; dos reseñas concurrentes no pueden ganar ambas.
func (r *CommentRepo) MarkReviewed(ctx context.Context, commentID, reviewID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE comments SET opened = FALSE, review_id = $2, updated_at = now()
		WHERE id = $1 AND opened`, commentID, reviewID)
	if err != nil {
		return false, mapError("mark comment reviewed", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SoftDelete marca el comentario como inactivo.
func (r *CommentRepo) SoftDelete(ctx context.Context, id string) (*entity.Comment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `
		UPDATE comments SET status = FALSE, updated_at = now()
		WHERE id = $1 RETURNING `+commentColumns, id)
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(
		&c.ID, &c.Rate, &c.Title, &c.Description, &c.UserID, &c.RestaurantID, &c.Opened, &c.ReviewID,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

package usecase

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// expander carga las relaciones de un listado a profundidad fija:
// restaurante -> dueño, comentarios -> autor, reseña -> dueño de la reseña.
// Hace una consulta por tipo de entidad, no una por fila.
type expander struct {
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func (e *expander) restaurants(ctx context.Context, list []*entity.Restaurant) ([]dto.RestaurantDetailResponse, error) {
	var commentIDs, userIDs []string
	for _, r := range list {
		userIDs = append(userIDs, r.OwnerID)
		commentIDs = append(commentIDs, r.CommentIDs...)
	}
	comments, err := e.commentRepo.ListByIDs(ctx, unique(commentIDs))
	if err != nil {
		return nil, err
	}
	details, err := e.comments(ctx, comments, userIDs)
	if err != nil {
		return nil, err
	}
	byComment := make(map[string]dto.CommentDetailResponse, len(details.comments))
	for _, c := range details.comments {
		byComment[c.ID] = c
	}

	out := make([]dto.RestaurantDetailResponse, 0, len(list))
	for _, r := range list {
		item := dto.RestaurantDetailResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Image:       r.Image,
			Owner:       dto.NewUserResponse(details.users[r.OwnerID]),
			Status:      r.Status,
			Comments:    make([]dto.CommentDetailResponse, 0, len(r.CommentIDs)),
			Rating:      r.Rating,
			CreatedAt:   r.CreatedAt,
		}
		for _, id := range r.CommentIDs {
			if c, ok := byComment[id]; ok {
				item.Comments = append(item.Comments, c)
			}
		}
		out = append(out, item)
	}
	return out, nil
}

type expandedComments struct {
	comments []dto.CommentDetailResponse
	users    map[string]*entity.User
}

// comments expande autor y reseña de cada comentario. extraUserIDs se cargan en la misma consulta.
func (e *expander) comments(ctx context.Context, list []*entity.Comment, extraUserIDs []string) (*expandedComments, error) {
	userIDs := append([]string(nil), extraUserIDs...)
	var reviewIDs []string
	for _, c := range list {
		userIDs = append(userIDs, c.UserID)
		if c.ReviewID != nil {
			reviewIDs = append(reviewIDs, *c.ReviewID)
		}
	}
	reviews, err := e.reviewRepo.ListByIDs(ctx, unique(reviewIDs))
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		userIDs = append(userIDs, r.OwnerID)
	}
	users, err := e.usersByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	reviewByID := make(map[string]*entity.Review, len(reviews))
	for _, r := range reviews {
		reviewByID[r.ID] = r
	}

	out := make([]dto.CommentDetailResponse, 0, len(list))
	for _, c := range list {
		item := dto.CommentDetailResponse{
			ID:          c.ID,
			Rate:        c.Rate,
			Title:       c.Title,
			Description: c.Description,
			User:        dto.NewUserResponse(users[c.UserID]),
			Restaurant:  c.RestaurantID,
			Opened:      c.Opened,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
		}
		if c.ReviewID != nil {
			if r, ok := reviewByID[*c.ReviewID]; ok {
				item.Review = reviewDetail(r, users)
			}
		}
		out = append(out, item)
	}
	return &expandedComments{comments: out, users: users}, nil
}

// reviews expande el dueño de cada reseña.
func (e *expander) reviews(ctx context.Context, list []*entity.Review) ([]dto.ReviewDetailResponse, error) {
	userIDs := make([]string, 0, len(list))
	for _, r := range list {
		userIDs = append(userIDs, r.OwnerID)
	}
	users, err := e.usersByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewDetailResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *reviewDetail(r, users))
	}
	return out, nil
}

func (e *expander) usersByID(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	ids = unique(ids)
	out := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	users, err := e.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func reviewDetail(r *entity.Review, users map[string]*entity.User) *dto.ReviewDetailResponse {
	return &dto.ReviewDetailResponse{
		ID:          r.ID,
		Description: r.Description,
		Owner:       dto.NewUserResponse(users[r.OwnerID]),
		Comment:     r.CommentID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

// unique quita vacíos y repetidos conservando el orden.
func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

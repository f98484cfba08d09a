package reviews

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/authz"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

const (
	msgRestaurantMissing = "Restaurant not found"
	msgCommentMissing    = "Comment not found"
	msgReviewMissing     = "Review not found"
)

// UpdateRestaurant aplica name, description, img y status. Solo admin.
func (uc *WorkflowUseCase) UpdateRestaurant(ctx context.Context, actor *entity.User, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	restaurant, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgRestaurantMissing)
	}
	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.Description != nil {
		restaurant.Description = *in.Description
	}
	if in.Image != nil {
		restaurant.Image = *in.Image
	}
	if in.Status != nil {
		restaurant.Status = *in.Status
	}
	restaurant.UpdatedAt = uc.now()
	if err := uc.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// UpdateComment aplica rate, title, description, user, restaurant, opened y status. Solo admin.
// Si cambia rate o status se recalcula el rating del restaurante.
func (uc *WorkflowUseCase) UpdateComment(ctx context.Context, actor *entity.User, id string, in dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	if in.Rate != nil && !entity.ValidRate(*in.Rate) {
		return nil, domain.Errorf(domain.ErrValidation, "rate debe estar entre %s y %s", entity.MinRate, entity.MaxRate)
	}

	var updated *entity.Comment
	err := uc.txRunner.Run(ctx, func(
		restaurantRepo repository.RestaurantRepository,
		commentRepo repository.CommentRepository,
		_ repository.ReviewRepository,
	) error {
		comment, err := commentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return domain.Errorf(domain.ErrNotFound, msgCommentMissing)
		}
		ratingChanged := in.Rate != nil || in.Status != nil
		if in.Rate != nil {
			comment.Rate = *in.Rate
		}
		if in.Title != nil {
			comment.Title = *in.Title
		}
		if in.Description != nil {
			comment.Description = *in.Description
		}
		if in.User != nil {
			comment.UserID = *in.User
		}
		if in.Restaurant != nil {
			comment.RestaurantID = *in.Restaurant
		}
		if in.Opened != nil {
			comment.Opened = *in.Opened
		}
		if in.Status != nil {
			comment.Status = *in.Status
		}
		comment.UpdatedAt = uc.now()
		if err := commentRepo.Update(ctx, comment); err != nil {
			return err
		}
		if ratingChanged {
			if err := restaurantRepo.RefreshRating(ctx, comment.RestaurantID); err != nil {
				return err
			}
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewCommentResponse(updated)
	return &out, nil
}

// UpdateReview aplica description, status, owner y comment. Solo admin.
func (uc *WorkflowUseCase) UpdateReview(ctx context.Context, actor *entity.User, id string, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgReviewMissing)
	}
	if in.Description != nil {
		review.Description = *in.Description
	}
	if in.Status != nil {
		review.Status = *in.Status
	}
	if in.Owner != nil {
		review.OwnerID = *in.Owner
	}
	if in.Comment != nil {
		review.CommentID = *in.Comment
	}
	review.UpdatedAt = uc.now()
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	out := dto.NewReviewResponse(review)
	return &out, nil
}

// DeleteRestaurant borrado lógico (status=false). Solo admin. Repetirlo sobre un inactivo no falla.
func (uc *WorkflowUseCase) DeleteRestaurant(ctx context.Context, actor *entity.User, id string) (*dto.RestaurantResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	restaurant, err := uc.restaurantRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgRestaurantMissing)
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// DeleteComment borrado lógico del comentario; sigue referenciado por el restaurante
// pero deja de contar en su rating. Solo admin.
func (uc *WorkflowUseCase) DeleteComment(ctx context.Context, actor *entity.User, id string) (*dto.CommentResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	var deleted *entity.Comment
	err := uc.txRunner.Run(ctx, func(
		restaurantRepo repository.RestaurantRepository,
		commentRepo repository.CommentRepository,
		_ repository.ReviewRepository,
	) error {
		comment, err := commentRepo.SoftDelete(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return domain.Errorf(domain.ErrNotFound, msgCommentMissing)
		}
		deleted = comment
		return restaurantRepo.RefreshRating(ctx, comment.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewCommentResponse(deleted)
	return &out, nil
}

// DeleteReview borrado lógico de la reseña. El comentario sigue REVIEWED. Solo admin.
func (uc *WorkflowUseCase) DeleteReview(ctx context.Context, actor *entity.User, id string) (*dto.ReviewResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	review, err := uc.reviewRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgReviewMissing)
	}
	out := dto.NewReviewResponse(review)
	return &out, nil
}

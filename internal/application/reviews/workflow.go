// Package reviews implementa el flujo comentario -> reseña y las mutaciones de administración
// sobre restaurantes, comentarios y reseñas.
package reviews

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/authz"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// Mensajes de error del flujo.
const (
	msgOwnerCannotComment    = "Owner cannot create comments"
	msgCommentForAnotherUser = "You cannot create comments for another users"
	msgRestaurantNotFound    = "The restaurant doesn't exist with specified id"
	msgAuthorNotFound        = "The user doesn't exist with specified id"
	msgAlreadyCommented      = "You already commented to this restaurant"
	msgReviewForAnotherOwner = "You cannot create reviews for another owners"
	msgCommentNotFound       = "The comment doesn't exist with specified id"
	msgAlreadyReviewed       = "That comment already reviewed"
	msgNotYourRestaurant     = "You cannot review comments of another owner's restaurant"
	msgReviewOwnerNotFound   = "The owner doesn't exist with specified id"
	msgInvalidReviewOwner    = "The review owner must be the restaurant owner or an admin"
)

// WorkflowUseCase orquesta la creación de comentarios (uno por usuario y restaurante)
// y su promoción a reseña (una por comentario abierto).
type WorkflowUseCase struct {
	txRunner       TxRunner
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	commentRepo    repository.CommentRepository
	reviewRepo     repository.ReviewRepository
	now            func() time.Time
}

// NewWorkflowUseCase construye el caso de uso.
func NewWorkflowUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		txRunner:       txRunner,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		commentRepo:    commentRepo,
		reviewRepo:     reviewRepo,
		now:            time.Now,
	}
}

// CreateComment crea un comentario abierto del autor indicado y lo agrega al restaurante.
// Los dueños no comentan; un usuario normal solo comenta en su propio nombre.
func (uc *WorkflowUseCase) CreateComment(ctx context.Context, actor *entity.User, in dto.CreateCommentRequest) (*dto.CommentCreatedResponse, error) {
	if err := authz.Check(actor, authz.AnyAuthenticated); err != nil {
		return nil, err
	}
	author := in.Author()
	switch actor.Role {
	case entity.RoleOwner:
		return nil, domain.Errorf(domain.ErrForbidden, msgOwnerCannotComment)
	case entity.RoleUser:
		if author != actor.ID {
			return nil, domain.Errorf(domain.ErrForbidden, msgCommentForAnotherUser)
		}
	case entity.RoleAdmin:
		if author == "" {
			return nil, domain.Errorf(domain.ErrValidation, "owner es requerido")
		}
	}
	if !entity.ValidRate(in.Rate) {
		return nil, domain.Errorf(domain.ErrValidation, "rate debe estar entre %s y %s", entity.MinRate, entity.MaxRate)
	}
	if author != actor.ID {
		u, err := uc.userRepo.GetByID(ctx, author)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, domain.Errorf(domain.ErrNotFound, msgAuthorNotFound)
		}
	}

	now := uc.now()
	comment := &entity.Comment{
		ID:           uuid.New().String(),
		Rate:         in.Rate,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		UserID:       author,
		RestaurantID: in.Restaurant,
		Opened:       true,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var restaurant *entity.Restaurant
	err := uc.txRunner.Run(ctx, func(
		restaurantRepo repository.RestaurantRepository,
		commentRepo repository.CommentRepository,
		_ repository.ReviewRepository,
	) error {
		// El bloqueo de la fila serializa comentarios concurrentes sobre el mismo restaurante.
		r, err := restaurantRepo.GetByIDForUpdate(ctx, in.Restaurant)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.Errorf(domain.ErrNotFound, msgRestaurantNotFound)
		}
		existing, err := commentRepo.FindByAuthor(ctx, r.CommentIDs, author)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Errorf(domain.ErrConflict, msgAlreadyCommented)
		}
		if err := commentRepo.Create(ctx, comment); err != nil {
			return err
		}
		if err := restaurantRepo.AppendComment(ctx, r.ID, comment.ID); err != nil {
			return err
		}
		if err := restaurantRepo.RefreshRating(ctx, r.ID); err != nil {
			return err
		}
		restaurant, err = restaurantRepo.GetByID(ctx, r.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CommentCreatedResponse{
		Comment:    dto.NewCommentResponse(comment),
		Restaurant: dto.NewRestaurantResponse(restaurant),
	}, nil
}

// CreateReview crea la reseña de un comentario abierto y lo pasa a REVIEWED.
// Un dueño solo reseña en su nombre y sobre comentarios de sus restaurantes.
func (uc *WorkflowUseCase) CreateReview(ctx context.Context, actor *entity.User, in dto.CreateReviewRequest) (*dto.ReviewCreatedResponse, error) {
	if err := authz.Check(actor, authz.OwnerOrAdmin); err != nil {
		return nil, err
	}
	if actor.Role.IsOwner() && in.Owner != actor.ID {
		return nil, domain.Errorf(domain.ErrForbidden, msgReviewForAnotherOwner)
	}

	comment, err := uc.commentRepo.GetByID(ctx, in.Comment)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgCommentNotFound)
	}
	if comment.State() != entity.CommentOpen {
		return nil, domain.Errorf(domain.ErrConflict, msgAlreadyReviewed)
	}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, comment.RestaurantID)
	if err != nil {
		return nil, err
	}
	if actor.Role.IsOwner() {
		if restaurant == nil || restaurant.OwnerID != actor.ID {
			return nil, domain.Errorf(domain.ErrForbidden, msgNotYourRestaurant)
		}
	} else if in.Owner != actor.ID {
		// Un admin puede reseñar a nombre de otro: el dueño del restaurante u otro admin.
		owner, err := uc.userRepo.GetByID(ctx, in.Owner)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.Errorf(domain.ErrNotFound, msgReviewOwnerNotFound)
		}
		ownsRestaurant := restaurant != nil && restaurant.OwnerID == owner.ID
		if !owner.Role.IsAdmin() && !ownsRestaurant {
			return nil, domain.Errorf(domain.ErrForbidden, msgInvalidReviewOwner)
		}
	}

	now := uc.now()
	review := &entity.Review{
		ID:          uuid.New().String(),
		Description: in.Description,
		OwnerID:     in.Owner,
		CommentID:   comment.ID,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var updated *entity.Comment
	err = uc.txRunner.Run(ctx, func(
		_ repository.RestaurantRepository,
		commentRepo repository.CommentRepository,
		reviewRepo repository.ReviewRepository,
	) error {
		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}
		// Transición guardada: solo pasa si el comentario sigue abierto.
		ok, err := commentRepo.MarkReviewed(ctx, comment.ID, review.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.Errorf(domain.ErrConflict, msgAlreadyReviewed)
		}
		updated, err = commentRepo.GetByID(ctx, comment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.ReviewCreatedResponse{
		Comment: dto.NewCommentResponse(updated),
		Review:  dto.NewReviewResponse(review),
	}, nil
}

package usecase

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// CommentUseCase lecturas de comentarios con autor y reseña expandidos.
type CommentUseCase struct {
	repo   repository.CommentRepository
	expand *expander
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(
	repo repository.CommentRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
) *CommentUseCase {
	return &CommentUseCase{
		repo:   repo,
		expand: &expander{userRepo: userRepo, commentRepo: repo, reviewRepo: reviewRepo},
	}
}

// List lista comentarios activos desde from, de a 5.
func (uc *CommentUseCase) List(ctx context.Context, from int) ([]dto.CommentDetailResponse, error) {
	list, err := uc.repo.ListActive(ctx, page(from, dto.CommentPageSize))
	if err != nil {
		return nil, err
	}
	out, err := uc.expand.comments(ctx, list, nil)
	if err != nil {
		return nil, err
	}
	return out.comments, nil
}

// GetByID devuelve el comentario expandido sin filtrar por status. nil si no existe.
func (uc *CommentUseCase) GetByID(ctx context.Context, id string) (*dto.CommentDetailResponse, error) {
	comment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	out, err := uc.expand.comments(ctx, []*entity.Comment{comment}, nil)
	if err != nil {
		return nil, err
	}
	return &out.comments[0], nil
}

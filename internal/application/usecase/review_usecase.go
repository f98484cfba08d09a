package usecase

import (
	"context"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// ReviewUseCase lecturas de reseñas con el dueño expandido.
type ReviewUseCase struct {
	repo   repository.ReviewRepository
	expand *expander
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		repo:   repo,
		expand: &expander{userRepo: userRepo, reviewRepo: repo},
	}
}

// List lista reseñas activas desde from, de a 5.
func (uc *ReviewUseCase) List(ctx context.Context, from int) ([]dto.ReviewDetailResponse, error) {
	list, err := uc.repo.ListActive(ctx, page(from, dto.ReviewPageSize))
	if err != nil {
		return nil, err
	}
	return uc.expand.reviews(ctx, list)
}

// GetByID devuelve la reseña expandida sin filtrar por status. nil si no existe.
func (uc *ReviewUseCase) GetByID(ctx context.Context, id string) (*dto.ReviewDetailResponse, error) {
	review, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}
	out, err := uc.expand.reviews(ctx, []*entity.Review{review})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

package usecase

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
	"github.com/shopspring/decimal"
)

// RestaurantUseCase alta de restaurantes y lecturas expandidas.
type RestaurantUseCase struct {
	repo     repository.RestaurantRepository
	userRepo repository.UserRepository
	expand   *expander
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(
	repo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		repo:     repo,
		userRepo: userRepo,
		expand:   &expander{userRepo: userRepo, commentRepo: commentRepo, reviewRepo: reviewRepo},
	}
}

// Create crea un restaurante. Un dueño solo puede crearlo a su nombre; el dueño indicado
// debe existir y tener rol MANAGE_ROLE.
func (uc *RestaurantUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if err := authz.Check(actor, authz.OwnerOrAdmin); err != nil {
		return nil, err
	}
	if actor.Role.IsOwner() && in.Owner != actor.ID {
		return nil, domain.Errorf(domain.ErrForbidden, "You cannot specify another owner")
	}
	owner, err := uc.userRepo.GetByID(ctx, in.Owner)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "The owner doesn't exist with specified id")
	}
	if !owner.Role.IsOwner() {
		return nil, domain.Errorf(domain.ErrValidation, "The specified owner is not a restaurant owner")
	}
	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Image:       in.Image,
		OwnerID:     owner.ID,
		Status:      true,
		CommentIDs:  []string{},
		Rating:      decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// List lista restaurantes activos desde el desplazamiento from.
func (uc *RestaurantUseCase) List(ctx context.Context, from int) ([]dto.RestaurantDetailResponse, error) {
	return uc.list(ctx, repository.RestaurantFilter{}, from)
}

// GetByID devuelve el restaurante expandido sin filtrar por status. nil si no existe.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, id string) (*dto.RestaurantDetailResponse, error) {
	restaurant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	out, err := uc.expand.restaurants(ctx, []*entity.Restaurant{restaurant})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// SearchByOwner lista los restaurantes activos de un dueño.
func (uc *RestaurantUseCase) SearchByOwner(ctx context.Context, ownerID string, from int) ([]dto.RestaurantDetailResponse, error) {
	return uc.list(ctx, repository.RestaurantFilter{OwnerID: ownerID}, from)
}

// SearchByRate lista restaurantes activos con rating > rate-1: un piso aproximado,
// rate=4 incluye un 3.5.
func (uc *RestaurantUseCase) SearchByRate(ctx context.Context, rate decimal.Decimal, from int) ([]dto.RestaurantDetailResponse, error) {
	floor := rate.Sub(decimal.NewFromInt(1))
	return uc.list(ctx, repository.RestaurantFilter{RatingAbove: &floor}, from)
}

func (uc *RestaurantUseCase) list(ctx context.Context, filter repository.RestaurantFilter, from int) ([]dto.RestaurantDetailResponse, error) {
	list, err := uc.repo.List(ctx, filter, page(from, dto.RestaurantPageSize))
	if err != nil {
		return nil, err
	}
	return uc.expand.restaurants(ctx, list)
}

func page(from, size int) repository.Page {
	if from < 0 {
		from = 0
	}
	return repository.Page{Skip: from, Limit: size}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/authz"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios: listado, edición y borrado lógico.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios activos desde from. Solo admin.
func (uc *UserUseCase) List(ctx context.Context, actor *entity.User, from int) ([]dto.UserResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActive(ctx, page(from, dto.UserPageSize))
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario. Un usuario puede verse a sí mismo; a otros solo un admin.
func (uc *UserUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	if err := uc.selfOrAdmin(actor, id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "User not found")
	}
	return dto.NewUserResponse(user), nil
}

// Update aplica name, email e img; role y status solo si actor es admin (si no, se ignoran).
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := uc.selfOrAdmin(actor, id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "User not found")
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			existing, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if in.Image != nil {
		user.Image = *in.Image
	}
	if actor.Role.IsAdmin() {
		if in.Role != nil {
			role, err := entity.ParseRole(*in.Role)
			if err != nil {
				return nil, domain.Errorf(domain.ErrValidation, "rol inválido")
			}
			user.Role = role
		}
		if in.Status != nil {
			user.Status = *in.Status
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete borrado lógico del usuario (status=false). Solo admin.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	if err := authz.Check(actor, authz.AdminOnly); err != nil {
		return nil, err
	}
	user, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "User not found")
	}
	return dto.NewUserResponse(user), nil
}

func (uc *UserUseCase) selfOrAdmin(actor *entity.User, id string) error {
	if err := authz.Check(actor, authz.AnyAuthenticated); err != nil {
		return err
	}
	if actor.ID != id && !actor.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// IsActive indica si el usuario existe y sigue activo. Los tokens no se revocan al borrar,
// así que el middleware lo consulta en cada petición autenticada.
func (uc *UserUseCase) IsActive(ctx context.Context, userID string) (bool, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Status, nil
}

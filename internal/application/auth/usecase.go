package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
	"github.com/jhoicas/Resenas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y validación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// El rol por defecto es USER_ROLE; ADMIN_ROLE no se obtiene por registro.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.RoleUser
	if in.Role != "" {
		r, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, domain.Errorf(domain.ErrValidation, "rol inválido")
		}
		role = r
	}
	if role.IsAdmin() {
		return nil, domain.Errorf(domain.ErrForbidden, "You cannot sign up as administrator")
	}
	return uc.createUser(ctx, in.Name, in.Email, in.Password, in.Image, role)
}

// CreateAdmin crea un administrador (solo desde cmd/seed).
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, name, email, password string) (*dto.UserResponse, error) {
	return uc.createUser(ctx, name, email, password, "", entity.RoleAdmin)
}

func (uc *AuthUseCase) createUser(ctx context.Context, name, email, password, image string, role entity.Role) (*dto.UserResponse, error) {
	email = normalizeEmail(email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Image:        image,
		Role:         role,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Authenticate verifica email/password y emite un token con el usuario embebido.
// ErrNotFound si el email no existe, ErrInvalidCredentials si el password no coincide.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrNotFound
	}
	// CompareHashAndPassword compara en tiempo constante.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.Status {
		return nil, "", domain.Errorf(domain.ErrForbidden, "cuenta inactiva")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, toClaims(user), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login adapta Authenticate a la salida HTTP.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, token, err := uc.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.NewUserResponse(user)}, nil
}

// ValidateToken verifica firma y expiración y devuelve el usuario del token. No consulta la DB.
func (uc *AuthUseCase) ValidateToken(token string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &entity.User{
		ID:     claims.ID,
		Name:   claims.Name,
		Email:  claims.Email,
		Image:  claims.Image,
		Role:   role,
		Status: claims.Status,
	}, nil
}

func toClaims(u *entity.User) jwt.UserClaims {
	return jwt.UserClaims{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Role:   string(u.Role),
		Status: u.Status,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

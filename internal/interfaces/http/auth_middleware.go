package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/authz"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
)

// LocalUser clave de c.Locals con el *entity.User del token.
const LocalUser = "user"

// TokenValidator lo implementa *auth.AuthUseCase.
type TokenValidator interface {
	ValidateToken(token string) (*entity.User, error)
}

// AuthMiddleware valida el JWT y deja el usuario del token en c.Locals.
// Acepta "Authorization: Bearer <token>" y también la cabecera "token".
func AuthMiddleware(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "err": err})
		}
		user, verr := validator.ValidateToken(tokenString)
		if verr != nil {
			return respondError(c, domain.ErrInvalidToken)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
		}
		if tok := strings.TrimSpace(parts[1]); tok != "" {
			return tok, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	if tok := strings.TrimSpace(c.Get("token")); tok != "" {
		return tok, nil
	}
	return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
}

// RequireRole aplica el guard de autorización. Debe ir después de AuthMiddleware.
func RequireRole(req authz.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authz.Check(GetUser(c), req); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return ""
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return string(u.Role)
	}
	return ""
}

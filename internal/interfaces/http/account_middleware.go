package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/domain"
)

// accountChecker es el contrato mínimo para saber si la cuenta del token sigue activa.
// Lo implementa *usecase.UserUseCase.
type accountChecker interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// RequireActiveAccount rechaza tokens de cuentas dadas de baja después de emitidos.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 403 Forbidden → la cuenta no existe o está inactiva.
//   - 503 Service Unavailable → fallo del almacenamiento al consultar.
func RequireActiveAccount(checker accountChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return respondError(c, domain.ErrInvalidToken)
		}
		active, err := checker.IsActive(c.UserContext(), userID)
		if err != nil {
			return respondError(c, err)
		}
		if !active {
			return respondError(c, domain.Errorf(domain.ErrForbidden, "cuenta inactiva"))
		}
		return c.Next()
	}
}

// Package authz decide si un usuario autenticado cumple el requisito de rol de una ruta.
package authz

import (
	"fmt"

	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
)

// Requirement nivel de rol exigido por una operación.
type Requirement int

const (
	// AnyAuthenticated cualquier usuario con token válido.
	AnyAuthenticated Requirement = iota
	// OwnerOrAdmin dueño de restaurante o administrador.
	OwnerOrAdmin
	// AdminOnly solo administrador.
	AdminOnly
)

func (r Requirement) String() string {
	switch r {
	case AnyAuthenticated:
		return "any"
	case OwnerOrAdmin:
		return "owner_or_admin"
	case AdminOnly:
		return "admin"
	default:
		return fmt.Sprintf("requirement(%d)", int(r))
	}
}

// Check devuelve nil si user cumple req, o domain.ErrForbidden.
// El error es el mismo para toda regla incumplida.
func Check(user *entity.User, req Requirement) error {
	if user == nil {
		return domain.ErrForbidden
	}
	if allowed(user.Role, req) {
		return nil
	}
	return domain.ErrForbidden
}

func allowed(role entity.Role, req Requirement) bool {
	switch req {
	case AnyAuthenticated:
		return role.Valid()
	case OwnerOrAdmin:
		switch role {
		case entity.RoleAdmin, entity.RoleOwner:
			return true
		case entity.RoleUser:
			return false
		}
		return false
	case AdminOnly:
		switch role {
		case entity.RoleAdmin:
			return true
		case entity.RoleOwner, entity.RoleUser:
			return false
		}
		return false
	default:
		return false
	}
}

package entity

import (
	"fmt"
	"strings"
	"time"
)

// Role es el rol de un User. Conjunto cerrado: RoleAdmin, RoleOwner, RoleUser.
type Role string

// Roles válidos para User.
const (
	RoleAdmin Role = "ADMIN_ROLE"
	RoleOwner Role = "MANAGE_ROLE" // dueño de restaurante
	RoleUser  Role = "USER_ROLE"
)

// legacyOwnerRole es la etiqueta antigua del rol dueño; se acepta al parsear.
const legacyOwnerRole = "OWNER_ROLE"

// ParseRole convierte una etiqueta en Role. Error si no es un rol conocido.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleOwner), legacyOwnerRole:
		return RoleOwner, nil
	case string(RoleUser):
		return RoleUser, nil
	default:
		return "", fmt.Errorf("rol desconocido %q", s)
	}
}

// Valid indica si r pertenece al conjunto de roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleUser:
		return true
	default:
		return false
	}
}

// IsAdmin indica si el rol es administrador.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsOwner indica si el rol es dueño de restaurante.
func (r Role) IsOwner() bool { return r == RoleOwner }

// User representa un usuario de la plataforma. Nunca se borra: Status pasa a false.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
	Image        string
	Role         Role
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

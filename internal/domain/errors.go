package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrValidation         = errors.New("validación fallida")
	ErrStoreUnavailable   = errors.New("almacenamiento no disponible")
)

// Error asocia un tipo de error de dominio con el mensaje que ve el cliente.
// errors.Is(err, domain.ErrConflict) sigue funcionando sobre un *Error.
type Error struct {
	Kind    error
	Message string
}

// Errorf construye un *Error del tipo indicado.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Message devuelve el mensaje de cliente de err: el de *Error si lo hay, si no el del tipo.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	for _, kind := range []error{
		ErrNotFound, ErrEmailAlreadyExists, ErrInvalidCredentials, ErrInvalidToken,
		ErrForbidden, ErrConflict, ErrValidation, ErrStoreUnavailable,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return err.Error()
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// ok responde {"ok": true, ...fields}.
func ok(c *fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// respondError traduce un error de dominio a {"ok": false, "err": {code, message}} con su status.
// Es el único punto donde un tipo de error se convierte en código HTTP.
func respondError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := domain.Message(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error atendiendo petición")
		if status == fiber.StatusInternalServerError {
			msg = "error interno"
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":  false,
		"err": dto.ErrorResponse{Code: code, Message: msg},
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized, "INVALID_TOKEN"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// parseBody decodifica el cuerpo JSON si lo hay y aplica las validaciones del DTO.
func parseBody(c *fiber.Ctx, out any) error {
	if err := bindBody(c, out); err != nil {
		return err
	}
	return dto.Validate(out)
}

// bindBody decodifica el cuerpo sin validar; un cuerpo vacío deja out intacto.
func bindBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return domain.Errorf(domain.ErrValidation, "cuerpo inválido")
	}
	return nil
}

// pageFrom lee "from" de la query; si no viene, del cuerpo JSON.
func pageFrom(c *fiber.Ctx) (int, error) {
	var in dto.PageRequest
	if err := bindBody(c, &in); err != nil {
		return 0, err
	}
	in.From = c.QueryInt("from", in.From)
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	return in.From, nil
}

// ErrorHandler para fiber.Config: errores que no pasan por respondError (rutas inexistentes,
// cuerpos demasiado grandes, panics recuperados) salen con el mismo formato.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code := "HTTP_ERROR"
		if ferr.Code == fiber.StatusNotFound {
			code = "NOT_FOUND"
		}
		return c.Status(ferr.Code).JSON(fiber.Map{
			"ok":  false,
			"err": dto.ErrorResponse{Code: code, Message: ferr.Message},
		})
	}
	return respondError(c, err)
}

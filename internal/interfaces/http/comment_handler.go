package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/domain"
)

// CommentHandler rutas de comentarios.
type CommentHandler struct {
	uc       *usecase.CommentUseCase
	workflow *reviews.WorkflowUseCase
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *usecase.CommentUseCase, workflow *reviews.WorkflowUseCase) *CommentHandler {
	return &CommentHandler{uc: uc, workflow: workflow}
}

// List godoc
// @Summary      Listar comentarios
// @Tags         comments
// @Security     Bearer
// @Produce      json
// @Param        from  query  int  false  "Desplazamiento"  default(0)
// @Success      200   {array}   dto.CommentDetailResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	from, err := pageFrom(c)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), from)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"comments": list})
}

// Get godoc
// @Summary      Obtener comentario
// @Tags         comments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.CommentDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	comment, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if comment == nil {
		return respondError(c, domain.Errorf(domain.ErrNotFound, "Comment not found"))
	}
	return ok(c, fiber.StatusOK, fiber.Map{"comment": comment})
}

// Create godoc
// @Summary      Comentar un restaurante
// @Description  Un usuario comenta a su nombre; un admin indica owner. Un comentario por usuario y restaurante.
// @Tags         comments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommentRequest  true  "restaurant, rate, title, description, owner"
// @Success      201   {object}  dto.CommentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.workflow.CreateComment(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{
		"comment":    out.Comment,
		"restaurant": out.Restaurant,
		"message":    "Comment Created",
	})
}

// Update godoc
// @Summary      Actualizar comentario (admin)
// @Tags         comments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comentario"
// @Param        body  body  dto.UpdateCommentRequest  true  "Campos permitidos"
// @Success      200   {object}  dto.CommentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCommentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	comment, err := h.workflow.UpdateComment(c.UserContext(), GetUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"comment": comment})
}

// Delete godoc
// @Summary      Dar de baja comentario (admin)
// @Tags         comments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.CommentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	comment, err := h.workflow.DeleteComment(c.UserContext(), GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"comment": comment})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/domain"
)

// ReviewHandler rutas de reseñas.
type ReviewHandler struct {
	uc       *usecase.ReviewUseCase
	workflow *reviews.WorkflowUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase, workflow *reviews.WorkflowUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc, workflow: workflow}
}

// List godoc
// @Summary      Listar reseñas
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        from  query  int  false  "Desplazamiento"  default(0)
// @Success      200   {array}   dto.ReviewDetailResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	from, err := pageFrom(c)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), from)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"reviews": list})
}

// Get godoc
// @Summary      Obtener reseña
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	review, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if review == nil {
		return respondError(c, domain.Errorf(domain.ErrNotFound, "Review not found"))
	}
	return ok(c, fiber.StatusOK, fiber.Map{"review": review})
}

// Create godoc
// @Summary      Responder un comentario
// @Description  El dueño del restaurante (o un admin) cierra un comentario abierto con una reseña.
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "comment, description, owner"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.workflow.CreateReview(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{
		"comment": out.Comment,
		"review":  out.Review,
		"message": "Review Created",
	})
}

// Update godoc
// @Summary      Actualizar reseña (admin)
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reseña"
// @Param        body  body  dto.UpdateReviewRequest  true  "description, status, owner, comment"
// @Success      200   {object}  dto.ReviewResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReviewRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	review, err := h.workflow.UpdateReview(c.UserContext(), GetUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"review": review})
}

// Delete godoc
// @Summary      Dar de baja reseña (admin)
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	review, err := h.workflow.DeleteReview(c.UserContext(), GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"review": review})
}

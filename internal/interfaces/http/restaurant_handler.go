package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/shopspring/decimal"
)

// RestaurantHandler rutas de restaurantes.
type RestaurantHandler struct {
	uc       *usecase.RestaurantUseCase
	workflow *reviews.WorkflowUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase, workflow *reviews.WorkflowUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, workflow: workflow}
}

// List godoc
// @Summary      Listar restaurantes
// @Description  Activos, de a 10, con dueño, comentarios y reseñas expandidos.
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        from  query  int  false  "Desplazamiento"  default(0)
// @Success      200   {array}   dto.RestaurantDetailResponse
// @Router       /restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	from, err := pageFrom(c)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), from)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurants": list})
}

// Get godoc
// @Summary      Obtener restaurante
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	restaurant, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if restaurant == nil {
		return respondError(c, domain.Errorf(domain.ErrNotFound, "Restaurant not found"))
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurant": restaurant})
}

// SearchByOwner godoc
// @Summary      Restaurantes de un dueño
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        owner  query  string  true   "ID del dueño"
// @Param        from   query  int     false  "Desplazamiento"  default(0)
// @Success      200    {array}   dto.RestaurantDetailResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /restaurants/search/owner [get]
func (h *RestaurantHandler) SearchByOwner(c *fiber.Ctx) error {
	var in dto.SearchByOwnerRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if q := c.Query("owner"); q != "" {
		in.Owner = q
	}
	in.From = c.QueryInt("from", in.From)
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.SearchByOwner(c.UserContext(), in.Owner, in.From)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurants": list})
}

// SearchByRate godoc
// @Summary      Restaurantes por rating
// @Description  Devuelve los que tienen rating > rate - 1.
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        rate  query  number  true   "Rating buscado"
// @Param        from  query  int     false  "Desplazamiento"  default(0)
// @Success      200   {array}   dto.RestaurantDetailResponse
// @Router       /restaurants/search/rate [get]
func (h *RestaurantHandler) SearchByRate(c *fiber.Ctx) error {
	var in dto.SearchByRateRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if q := c.Query("rate"); q != "" {
		rate, err := decimal.NewFromString(q)
		if err != nil {
			return respondError(c, domain.Errorf(domain.ErrValidation, "rate debe ser numérico"))
		}
		in.Rate = &rate
	}
	in.From = c.QueryInt("from", in.From)
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.SearchByRate(c.UserContext(), *in.Rate, in.From)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurants": list})
}

// Create godoc
// @Summary      Crear restaurante
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "name, description, owner"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	restaurant, err := h.uc.Create(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"restaurant": restaurant, "message": "Restaurant Created"})
}

// Update godoc
// @Summary      Actualizar restaurante (admin)
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del restaurante"
// @Param        body  body  dto.UpdateRestaurantRequest  true  "name, description, img, status"
// @Success      200   {object}  dto.RestaurantResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRestaurantRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	restaurant, err := h.workflow.UpdateRestaurant(c.UserContext(), GetUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurant": restaurant})
}

// Delete godoc
// @Summary      Dar de baja restaurante (admin)
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	restaurant, err := h.workflow.DeleteRestaurant(c.UserContext(), GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"restaurant": restaurant})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Resenas-api/internal/application/auth"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	RestaurantUC *usecase.RestaurantUseCase
	CommentUC    *usecase.CommentUseCase
	ReviewUC     *usecase.ReviewUseCase
	Workflow     *reviews.WorkflowUseCase
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC, deps.Workflow)
	commentHandler := NewCommentHandler(deps.CommentUC, deps.Workflow)
	reviewHandler := NewReviewHandler(deps.ReviewUC, deps.Workflow)

	// Públicas
	app.Post("/login", authHandler.Login)
	app.Post("/users", userHandler.Register)

	// Rutas protegidas: token válido, cuenta activa y el rol exigido
	protect := func(req authz.Requirement) []fiber.Handler {
		return []fiber.Handler{AuthMiddleware(deps.AuthUC), RequireActiveAccount(deps.UserUC), RequireRole(req)}
	}
	anyUser := protect(authz.AnyAuthenticated)
	ownerOrAdmin := protect(authz.OwnerOrAdmin)
	admin := protect(authz.AdminOnly)

	app.Get("/current", with(anyUser, authHandler.Current)...)

	users := app.Group("/users")
	users.Get("/", with(admin, userHandler.List)...)
	users.Get("/:id", with(anyUser, userHandler.Get)...)
	users.Put("/:id", with(anyUser, userHandler.Update)...)
	users.Delete("/:id", with(admin, userHandler.Delete)...)

	// /search/* antes de /:id
	restaurants := app.Group("/restaurants")
	restaurants.Get("/search/owner", with(ownerOrAdmin, restaurantHandler.SearchByOwner)...)
	restaurants.Get("/search/rate", with(anyUser, restaurantHandler.SearchByRate)...)
	restaurants.Get("/", with(anyUser, restaurantHandler.List)...)
	restaurants.Get("/:id", with(anyUser, restaurantHandler.Get)...)
	restaurants.Post("/", with(ownerOrAdmin, restaurantHandler.Create)...)
	restaurants.Put("/:id", with(admin, restaurantHandler.Update)...)
	restaurants.Delete("/:id", with(admin, restaurantHandler.Delete)...)

	comments := app.Group("/comments")
	comments.Get("/", with(anyUser, commentHandler.List)...)
	comments.Get("/:id", with(anyUser, commentHandler.Get)...)
	comments.Post("/", with(anyUser, commentHandler.Create)...)
	comments.Put("/:id", with(admin, commentHandler.Update)...)
	comments.Delete("/:id", with(admin, commentHandler.Delete)...)

	reviewsGroup := app.Group("/reviews")
	reviewsGroup.Get("/", with(anyUser, reviewHandler.List)...)
	reviewsGroup.Get("/:id", with(anyUser, reviewHandler.Get)...)
	reviewsGroup.Post("/", with(ownerOrAdmin, reviewHandler.Create)...)
	reviewsGroup.Put("/:id", with(admin, reviewHandler.Update)...)
	reviewsGroup.Delete("/:id", with(admin, reviewHandler.Delete)...)
}

func with(chain []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

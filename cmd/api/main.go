package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Resenas-api/internal/application/auth"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
	"github.com/jhoicas/Resenas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Resenas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Resenas-api/internal/interfaces/http"
	"github.com/jhoicas/Resenas-api/pkg/config"
	"github.com/jhoicas/Resenas-api/pkg/logger"
)

// stores repositorios y runner de transacciones del driver elegido.
type stores struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	comments    repository.CommentRepository
	reviews     repository.ReviewRepository
	tx          reviews.TxRunner
	close       func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) stores {
	if cfg.Store.Driver == config.StoreMemory {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return stores{
			users:       s.Users(),
			restaurants: s.Restaurants(),
			comments:    s.Comments(),
			reviews:     s.Reviews(),
			tx:          memory.NewTxRunner(s),
			close:       func() {},
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	return stores{
		users:       postgres.NewUserRepository(pool),
		restaurants: postgres.NewRestaurantRepository(pool),
		comments:    postgres.NewCommentRepository(pool),
		reviews:     postgres.NewReviewRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st := openStores(ctx, cfg, log)
	defer st.close()

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	workflowUC := reviews.NewWorkflowUseCase(st.tx, st.users, st.restaurants, st.comments, st.reviews)
	restaurantUC := usecase.NewRestaurantUseCase(st.restaurants, st.users, st.comments, st.reviews)
	commentUC := usecase.NewCommentUseCase(st.comments, st.users, st.reviews)
	reviewUC := usecase.NewReviewUseCase(st.reviews, st.users)
	userUC := usecase.NewUserUseCase(st.users)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, token",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Reseñas API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		RestaurantUC: restaurantUC,
		CommentUC:    commentUC,
		ReviewUC:     reviewUC,
		Workflow:     workflowUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

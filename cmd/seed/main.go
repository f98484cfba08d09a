// seed crea el primer administrador a partir de SEED_ADMIN_NAME, SEED_ADMIN_EMAIL y
// SEED_ADMIN_PASSWORD. ADMIN_ROLE no se puede obtener por registro público.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Resenas-api/internal/application/auth"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Resenas-api/pkg/config"
	"github.com/jhoicas/Resenas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.AdminEmail == "" || len(cfg.Seed.AdminPassword) < 6 {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD (mín. 6) son requeridos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	admin, err := authUC.CreateAdmin(ctx, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("el administrador ya existe")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
}

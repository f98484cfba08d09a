// migrate aplica las migraciones SQL embebidas sobre la base configurada y termina.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Strs("aplicadas", applied).Msg("migraciones")
	}
	version, err := postgres.MigrationVersion(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("versión del esquema")
	}
	if len(applied) == 0 {
		log.Info().Int64("version", version).Msg("esquema al día")
		return
	}
	log.Info().Strs("aplicadas", applied).Int64("version", version).Msg("migraciones aplicadas")
}

// seed puebla la base con los datos mínimos para operar: la sucursal principal,
// un usuario admin y los catálogos base (categoría y color genéricos).
// Es idempotente: si el admin ya existe solo imprime un token nuevo.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD (default admin@almacen.local / cambiar123)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/infrastructure/postgres"
	"github.com/jdrojas/api-almacen/pkg/config"
	"github.com/jdrojas/api-almacen/pkg/jwt"
	"github.com/jdrojas/api-almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := envOr("SEED_ADMIN_EMAIL", "admin@almacen.local")
	password := envOr("SEED_ADMIN_PASSWORD", "cambiar123")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sucursalRepo := postgres.NewSucursalRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)

	admin, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}

	if admin == nil {
		now := time.Now()
		sucursal := &entity.Sucursal{
			ID:        uuid.New().String(),
			Nombre:    "Sucursal Principal",
			Direccion: "Bodega central",
			Status:    entity.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := sucursalRepo.Create(ctx, sucursal); err != nil {
			log.Fatal().Err(err).Msg("crear sucursal principal")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("generar hash")
		}
		admin = &entity.User{
			ID:           uuid.New().String(),
			Name:         "Administrador",
			Email:        email,
			PasswordHash: string(hash),
			SucursalID:   sucursal.ID,
			Role:         entity.RoleAdmin,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}

		categoria := &entity.Categoria{
			ID:          uuid.New().String(),
			Nombre:      "General",
			Descripcion: "Categoría por defecto",
			Status:      entity.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := categoriaRepo.Create(ctx, categoria); err != nil {
			log.Fatal().Err(err).Msg("crear categoría base")
		}
		color := &entity.Color{
			ID:        uuid.New().String(),
			Nombre:    "Sin color",
			Status:    entity.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := colorRepo.Create(ctx, color); err != nil {
			log.Fatal().Err(err).Msg("crear color base")
		}

		log.Info().
			Str("sucursal_id", sucursal.ID).
			Str("admin_id", admin.ID).
			Msg("datos base creados")
	} else {
		log.Info().Str("admin_id", admin.ID).Msg("admin ya existe, omitiendo creación")
	}

	token, err := jwt.Generate(cfg.JWT.Secret, admin.ID, admin.SucursalID, admin.Role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	fmt.Printf("admin: %s\ntoken: %s\n", admin.Email, token)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

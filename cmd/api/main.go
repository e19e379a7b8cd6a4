package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jdrojas/api-almacen/internal/application/inventory"
	"github.com/jdrojas/api-almacen/internal/application/usecase"
	"github.com/jdrojas/api-almacen/internal/infrastructure/postgres"
	httpRouter "github.com/jdrojas/api-almacen/internal/interfaces/http"
	"github.com/jdrojas/api-almacen/pkg/config"
	"github.com/jdrojas/api-almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sucursalRepo := postgres.NewSucursalRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	movimientoRepo := postgres.NewMovimientoInventarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(
		txRunner, materialRepo, productoRepo, sucursalRepo, userRepo,
	)
	movimientoQueryUC := inventory.NewMovimientoQueryUseCase(movimientoRepo)
	inventarioUC := inventory.NewInventarioUseCase(inventarioRepo, materialRepo, productoRepo, sucursalRepo)

	sucursalUC := usecase.NewSucursalUseCase(sucursalRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	colorUC := usecase.NewColorUseCase(colorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo, colorRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, categoriaRepo, proveedorRepo, colorRepo)
	userUC := usecase.NewUserUseCase(userRepo, sucursalRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Almacén",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SucursalUC:       sucursalUC,
		ProveedorUC:      proveedorUC,
		ColorUC:          colorUC,
		CategoriaUC:      categoriaUC,
		ProductoUC:       productoUC,
		MaterialUC:       materialUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		MovimientoQuery:  movimientoQueryUC,
		InventarioUC:     inventarioUC,
		JWTSecret:        cfg.JWT.Secret,
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/inventory"
	"github.com/jdrojas/api-almacen/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SucursalUC  *usecase.SucursalUseCase
	ProveedorUC *usecase.ProveedorUseCase
	ColorUC     *usecase.ColorUseCase
	CategoriaUC *usecase.CategoriaUseCase
	ProductoUC  *usecase.ProductoUseCase
	MaterialUC  *usecase.MaterialUseCase
	UserUC      *usecase.UserUseCase

	RegisterMovement *inventory.RegisterMovementUseCase
	MovimientoQuery  *inventory.MovimientoQueryUseCase
	InventarioUC     *inventory.InventarioUseCase

	JWTSecret string
}

// crudRoutes registra el patrón común de los recursos maestros:
// GET /, POST /, GET /:id, PUT /:id, DELETE /:id (borrado lógico), POST /:id/restore.
type crudHandler interface {
	Create(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	Disable(c *fiber.Ctx) error
	Restore(c *fiber.Ctx) error
}

func crudRoutes(g fiber.Router, h crudHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Disable)
	g.Post("/:id/restore", h.Restore)
}

// Router registra las rutas de la API. Todas las rutas de negocio van detrás
// del middleware de autenticación; el usuario actuante sale siempre del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	crudRoutes(api.Group("/sucursales"), NewSucursalHandler(deps.SucursalUC))
	crudRoutes(api.Group("/proveedores"), NewProveedorHandler(deps.ProveedorUC))
	crudRoutes(api.Group("/colores"), NewColorHandler(deps.ColorUC))
	crudRoutes(api.Group("/categorias"), NewCategoriaHandler(deps.CategoriaUC))
	crudRoutes(api.Group("/productos"), NewProductoHandler(deps.ProductoUC))
	crudRoutes(api.Group("/materiales"), NewMaterialHandler(deps.MaterialUC))
	crudRoutes(api.Group("/usuarios"), NewUserHandler(deps.UserUC))
	crudRoutes(api.Group("/inventarios"), NewInventarioHandler(deps.InventarioUC))

	// Movimientos: el log es append-only, no hay PUT ni DELETE.
	movimientos := api.Group("/movimientos-inventario")
	movimientoHandler := NewMovimientoHandler(deps.RegisterMovement, deps.MovimientoQuery)
	movimientos.Post("/", movimientoHandler.Register)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)

	// Barcode para etiquetas
	barcodeHandler := NewBarcodeHandler()
	api.Get("/barcode/:code", barcodeHandler.Render)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/inventory"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// InventarioHandler administración de registros de inventario (protegido).
// El stock no se edita por aquí: solo lo mutan los movimientos.
type InventarioHandler struct {
	uc *inventory.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventory.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Create godoc
// @Summary      Alta manual de registro de inventario (stock 0)
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventarioRequest  true  "tipo, material_id o producto_id, sucursal_id"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve un registro de inventario por ID.
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario")
	}
	return c.JSON(out)
}

// Update reasigna la sucursal de un registro (tipo e ítem son inmutables).
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), userID, in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros de inventario
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "active | inactive"
// @Param        sucursal_id  query  string  false  "Filtrar por sucursal"
// @Param        tipo         query  string  false  "Material | Producto"
// @Param        page         query  int     false  "Página"            default(1)
// @Param        per_page     query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.InventarioListResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	var f repository.InventarioFilter
	if s := c.Query("status"); s != "" {
		st := entity.Status(s)
		if !st.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		f.Status = &st
	}
	if s := c.Query("tipo"); s != "" {
		t := entity.ItemType(s)
		if !t.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo inválido"})
		}
		f.Tipo = &t
	}
	f.SucursalID = c.Query("sucursal_id")

	out, err := h.uc.List(c.Context(), f, pageRequest(c, 20))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Disable borrado lógico del registro; el historial de movimientos permanece.
func (h *InventarioHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario deshabilitado"})
}

// Restore reactiva un registro deshabilitado.
func (h *InventarioHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario restaurado"})
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/inventory"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// MovimientoHandler maneja el registro y consulta de movimientos de inventario (protegido).
type MovimientoHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovimientoQueryUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovimientoQueryUseCase) *MovimientoHandler {
	return &MovimientoHandler{register: register, query: query}
}

// Register godoc
// @Summary      Registrar movimiento de inventario (entrada, salida, ajuste)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovimientoRequest  true  "motivo, tipo, material_id o producto_id, cantidad, precio_unitario (Producto), sucursal_id"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos-inventario [post]
func (h *MovimientoHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mov, err := h.register.RegisterFromRequest(c.Context(), userID, in)
	if err != nil {
		return domainError(c, err)
	}
	out := inventory.ToMovimientoResponse(mov)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos-inventario/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "movimiento")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        motivo       query  string  false  "entrada | salida | ajuste"
// @Param        tipo         query  string  false  "Material | Producto"
// @Param        material_id  query  string  false  "Filtrar por material"
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        sucursal_id  query  string  false  "Filtrar por sucursal"
// @Param        start_date   query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date     query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        page         query  int     false  "Página"            default(1)
// @Param        per_page     query  int     false  "Tamaño de página"  default(15)
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos-inventario [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var f repository.MovimientoFilter
	if s := c.Query("motivo"); s != "" {
		m := entity.Motivo(s)
		if !m.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "motivo inválido"})
		}
		f.Motivo = &m
	}
	if s := c.Query("tipo"); s != "" {
		t := entity.ItemType(s)
		if !t.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo inválido"})
		}
		f.Tipo = &t
	}
	f.MaterialID = c.Query("material_id")
	f.ProductoID = c.Query("producto_id")
	f.SucursalID = c.Query("sucursal_id")

	var err error
	if f.StartDate, err = parseDate(c.Query("start_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido, usar YYYY-MM-DD"})
	}
	if f.EndDate, err = parseDate(c.Query("end_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido, usar YYYY-MM-DD"})
	}

	page := pageRequest(c, 15)
	out, err := h.query.List(c.Context(), f, page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// parseDate interpreta una fecha YYYY-MM-DD; cadena vacía devuelve nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// pageRequest lee page/per_page de la query con el default de per_page dado.
func pageRequest(c *fiber.Ctx, perPageDefault int) dto.PageRequest {
	page := dto.PageRequest{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", perPageDefault),
	}
	page.DefaultPage(perPageDefault)
	return page
}

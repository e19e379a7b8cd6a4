package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/usecase"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// SucursalHandler maneja las peticiones HTTP para Sucursal (protegido).
type SucursalHandler struct {
	uc *usecase.SucursalUseCase
}

// NewSucursalHandler construye el handler.
func NewSucursalHandler(uc *usecase.SucursalUseCase) *SucursalHandler {
	return &SucursalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         sucursales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSucursalRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.SucursalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sucursales [post]
func (h *SucursalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSucursalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve una sucursal por ID.
func (h *SucursalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "sucursal")
	}
	return c.JSON(out)
}

// Update modifica los campos presentes en el body.
func (h *SucursalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSucursalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "sucursal")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sucursales
// @Tags         sucursales
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "active | inactive"
// @Param        nombre    query  string  false  "Coincidencia parcial"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.SucursalListResponse
// @Router       /api/sucursales [get]
func (h *SucursalHandler) List(c *fiber.Ctx) error {
	var f repository.SucursalFilter
	if s := c.Query("status"); s != "" {
		st := entity.Status(s)
		if !st.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		f.Status = &st
	}
	f.Nombre = c.Query("nombre")

	out, err := h.uc.List(c.Context(), f, pageRequest(c, 20))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Disable borrado lógico de la sucursal.
func (h *SucursalHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sucursal deshabilitada"})
}

// Restore reactiva una sucursal deshabilitada.
func (h *SucursalHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sucursal restaurada"})
}

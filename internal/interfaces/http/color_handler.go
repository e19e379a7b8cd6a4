package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/usecase"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// ColorHandler maneja las peticiones HTTP para el catálogo de colores (protegido).
type ColorHandler struct {
	uc *usecase.ColorUseCase
}

// NewColorHandler construye el handler.
func NewColorHandler(uc *usecase.ColorUseCase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateColorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ColorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "color")
	}
	return c.JSON(out)
}

func (h *ColorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateColorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c, "color")
	}
	return c.JSON(out)
}

func (h *ColorHandler) List(c *fiber.Ctx) error {
	var f repository.ColorFilter
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

func (h *ColorHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "color deshabilitado"})
}

func (h *ColorHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "color restaurado"})
}

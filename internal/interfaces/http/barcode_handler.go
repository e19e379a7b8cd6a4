package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/infrastructure/barcode"
)

// BarcodeHandler genera imágenes de código de barras para etiquetas (protegido).
type BarcodeHandler struct{}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler() *BarcodeHandler {
	return &BarcodeHandler{}
}

// Render godoc
// @Summary      Generar código de barras Code-128 en PNG
// @Tags         barcode
// @Security     Bearer
// @Produce      png
// @Param        code  path  string  true  "Texto a codificar (ej. codigo_barras del producto)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/barcode/{code} [get]
func (h *BarcodeHandler) Render(c *fiber.Ctx) error {
	code := c.Params("code")
	img, err := barcode.GeneratePNG(code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código no codificable: " + err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

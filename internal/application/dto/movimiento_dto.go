package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovimientoRequest body para POST /api/movimientos-inventario.
// Solo uno de material_id/producto_id debe venir, acorde a tipo; el otro se ignora.
// El usuario actuante sale del token, no del body.
type RegisterMovimientoRequest struct {
	Motivo         string           `json:"motivo"` // entrada | salida | ajuste
	Descripcion    string           `json:"descripcion,omitempty"`
	Tipo           string           `json:"tipo"` // Material | Producto
	MaterialID     string           `json:"material_id,omitempty"`
	ProductoID     string           `json:"producto_id,omitempty"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	SucursalID     string           `json:"sucursal_id"`
}

// MovimientoResponse salida de un movimiento de inventario.
type MovimientoResponse struct {
	ID             string          `json:"id"`
	Motivo         string          `json:"motivo"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Tipo           string          `json:"tipo"`
	MaterialID     string          `json:"material_id,omitempty"`
	ProductoID     string          `json:"producto_id,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	SucursalID     string          `json:"sucursal_id"`
	UsuarioID      string          `json:"usuario_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovimientoListResponse lista paginada de movimientos (más recientes primero).
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Meta  PageResponse         `json:"meta"`
}

package dto

import "time"

// CreateInventarioRequest alta manual de un registro de inventario (stock inicia en 0).
type CreateInventarioRequest struct {
	Tipo       string `json:"tipo"` // Material | Producto
	MaterialID string `json:"material_id,omitempty"`
	ProductoID string `json:"producto_id,omitempty"`
	SucursalID string `json:"sucursal_id"`
}

// UpdateInventarioRequest actualización administrativa. Tipo e ítem no se pueden cambiar.
type UpdateInventarioRequest struct {
	SucursalID *string `json:"sucursal_id,omitempty"`
}

// InventarioResponse salida de un registro de inventario.
type InventarioResponse struct {
	ID          string    `json:"id"`
	Tipo        string    `json:"tipo"`
	MaterialID  string    `json:"material_id,omitempty"`
	ProductoID  string    `json:"producto_id,omitempty"`
	SucursalID  string    `json:"sucursal_id"`
	StockActual int       `json:"stock_actual"`
	UsuarioID   string    `json:"usuario_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventarioListResponse lista paginada de registros de inventario.
type InventarioListResponse struct {
	Items []InventarioResponse `json:"items"`
	Meta  PageResponse         `json:"meta"`
}

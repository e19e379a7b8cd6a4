package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CategoriaID  string          `json:"categoria_id"`
	Talla        string          `json:"talla"`
	ColorID      string          `json:"color_id"`
	Precio       decimal.Decimal `json:"precio"`
	CodigoBarras string          `json:"codigo_barras"`
}

// UpdateProductoRequest entrada para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre       *string          `json:"nombre,omitempty"`
	Descripcion  *string          `json:"descripcion,omitempty"`
	CategoriaID  *string          `json:"categoria_id,omitempty"`
	Talla        *string          `json:"talla,omitempty"`
	ColorID      *string          `json:"color_id,omitempty"`
	Precio       *decimal.Decimal `json:"precio,omitempty"`
	CodigoBarras *string          `json:"codigo_barras,omitempty"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CategoriaID  string          `json:"categoria_id"`
	Talla        string          `json:"talla"`
	ColorID      string          `json:"color_id"`
	Precio       decimal.Decimal `json:"precio"`
	CodigoBarras string          `json:"codigo_barras"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Meta  PageResponse       `json:"meta"`
}

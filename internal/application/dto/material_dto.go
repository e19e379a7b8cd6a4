package dto

import "time"

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	CodArticulo  string `json:"cod_articulo"`
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	CategoriaID  string `json:"categoria_id"`
	ProveedorID  string `json:"proveedor_id"`
	ColorID      string `json:"color_id"`
	CodigoBarras string `json:"codigo_barras"`
}

// UpdateMaterialRequest entrada para actualizar un material.
type UpdateMaterialRequest struct {
	CodArticulo  *string `json:"cod_articulo,omitempty"`
	Nombre       *string `json:"nombre,omitempty"`
	Descripcion  *string `json:"descripcion,omitempty"`
	CategoriaID  *string `json:"categoria_id,omitempty"`
	ProveedorID  *string `json:"proveedor_id,omitempty"`
	ColorID      *string `json:"color_id,omitempty"`
	CodigoBarras *string `json:"codigo_barras,omitempty"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID           string    `json:"id"`
	CodArticulo  string    `json:"cod_articulo"`
	Nombre       string    `json:"nombre"`
	Descripcion  string    `json:"descripcion"`
	CategoriaID  string    `json:"categoria_id"`
	ProveedorID  string    `json:"proveedor_id"`
	ColorID      string    `json:"color_id"`
	CodigoBarras string    `json:"codigo_barras"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Meta  PageResponse       `json:"meta"`
}

package dto

import "time"

// CreateSucursalRequest entrada para crear una sucursal.
type CreateSucursalRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

// UpdateSucursalRequest entrada para actualizar una sucursal.
type UpdateSucursalRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

// SucursalResponse salida de una sucursal.
type SucursalResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SucursalListResponse lista paginada de sucursales.
type SucursalListResponse struct {
	Items []SucursalResponse `json:"items"`
	Meta  PageResponse       `json:"meta"`
}

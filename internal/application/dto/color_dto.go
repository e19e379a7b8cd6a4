package dto

import "time"

// CreateColorRequest entrada para crear un color.
type CreateColorRequest struct {
	Nombre string `json:"nombre"`
}

// UpdateColorRequest entrada para actualizar un color.
type UpdateColorRequest struct {
	Nombre *string `json:"nombre,omitempty"`
}

// ColorResponse salida de un color.
type ColorResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ColorListResponse lista paginada de colores.
type ColorListResponse struct {
	Items []ColorResponse `json:"items"`
	Meta  PageResponse    `json:"meta"`
}

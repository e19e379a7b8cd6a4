package entity

import "time"

// Color catálogo de colores para productos y materiales.
type Color struct {
	ID        string
	Nombre    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Disable marca el color como inactivo (borrado lógico).
func (c *Color) Disable() { c.Status = StatusInactive }

// Restore reactiva un color inactivo.
func (c *Color) Restore() { c.Status = StatusActive }

package entity

import "time"

// Categoria agrupa productos y materiales.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Disable marca la categoría como inactiva (borrado lógico).
func (c *Categoria) Disable() { c.Status = StatusInactive }

// Restore reactiva una categoría inactiva.
func (c *Categoria) Restore() { c.Status = StatusActive }

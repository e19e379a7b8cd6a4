package entity

import "time"

// Sucursal representa una sucursal o bodega donde se almacena inventario.
type Sucursal struct {
	ID        string
	Nombre    string
	Direccion string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Disable marca la sucursal como inactiva (borrado lógico).
func (s *Sucursal) Disable() { s.Status = StatusInactive }

// Restore reactiva una sucursal inactiva.
func (s *Sucursal) Restore() { s.Status = StatusActive }

package entity

import "time"

// Proveedor representa un proveedor de materiales.
type Proveedor struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Disable marca el proveedor como inactivo (borrado lógico).
func (p *Proveedor) Disable() { p.Status = StatusInactive }

// Restore reactiva un proveedor inactivo.
func (p *Proveedor) Restore() { p.Status = StatusActive }

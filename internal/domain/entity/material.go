package entity

import "time"

// Material representa una materia prima o insumo del almacén.
type Material struct {
	ID           string
	CodArticulo  string // código interno del artículo
	Nombre       string
	Descripcion  string
	CategoriaID  string
	ProveedorID  string
	ColorID      string
	CodigoBarras string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Disable marca el material como inactivo (borrado lógico).
func (m *Material) Disable() { m.Status = StatusInactive }

// Restore reactiva un material inactivo.
func (m *Material) Restore() { m.Status = StatusActive }

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto terminado del almacén.
type Producto struct {
	ID           string
	Nombre       string
	Descripcion  string
	CategoriaID  string
	Talla        string
	ColorID      string
	Precio       decimal.Decimal
	CodigoBarras string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Disable marca el producto como inactivo (borrado lógico).
func (p *Producto) Disable() { p.Status = StatusInactive }

// Restore reactiva un producto inactivo.
func (p *Producto) Restore() { p.Status = StatusActive }

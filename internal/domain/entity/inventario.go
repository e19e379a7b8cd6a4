package entity

import "time"

// Inventario es el registro de existencias de un ítem en una sucursal
// (stock actual materializado; el historial vive en movimientos_inventario).
// Existe a lo sumo un registro por (tipo, ítem, sucursal).
type Inventario struct {
	ID          string
	Item        ItemRef
	SucursalID  string
	StockActual int // nunca negativo
	UsuarioID   string // último usuario que afectó el stock
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Disable marca el registro como inactivo (borrado lógico). No altera el stock.
func (i *Inventario) Disable() { i.Status = StatusInactive }

// Restore reactiva un registro inactivo.
func (i *Inventario) Restore() { i.Status = StatusActive }

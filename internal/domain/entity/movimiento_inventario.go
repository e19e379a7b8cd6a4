package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivo razón de un movimiento de inventario.
type Motivo string

const (
	MotivoEntrada Motivo = "entrada"
	MotivoSalida  Motivo = "salida"
	MotivoAjuste  Motivo = "ajuste" // cantidad con signo: positiva suma, negativa resta
)

// Valid indica si el motivo es uno de los conocidos.
func (m Motivo) Valid() bool {
	return m == MotivoEntrada || m == MotivoSalida || m == MotivoAjuste
}

// MovimientoInventario registra un movimiento de inventario (entrada, salida o ajuste).
// Es inmutable una vez creado: no existe operación de actualización ni borrado.
type MovimientoInventario struct {
	ID             string
	Motivo         Motivo
	Descripcion    string
	Item           ItemRef
	Cantidad       int // magnitud para entrada/salida; con signo para ajuste
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal // Cantidad * PrecioUnitario para Producto; 0 para Material
	SucursalID     string
	UsuarioID      string
	CreatedAt      time.Time
}

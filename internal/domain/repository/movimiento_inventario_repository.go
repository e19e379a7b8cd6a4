package repository

import (
	"context"
	"time"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// MovimientoFilter filtros de listado de movimientos.
// StartDate/EndDate son inclusivos y se comparan a granularidad de día.
type MovimientoFilter struct {
	Motivo     *entity.Motivo
	Tipo       *entity.ItemType
	MaterialID string
	ProductoID string
	SucursalID string
	StartDate  *time.Time
	EndDate    *time.Time
}

// MovimientoInventarioRepository define el puerto del log de movimientos.
// Es append-only: no existe Update ni Delete.
type MovimientoInventarioRepository interface {
	Create(ctx context.Context, movimiento *entity.MovimientoInventario) error
	GetByID(ctx context.Context, id string) (*entity.MovimientoInventario, error)
	// List devuelve movimientos ordenados por created_at descendente y el total sin paginar.
	List(ctx context.Context, f MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, int, error)
}

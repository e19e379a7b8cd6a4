package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// InventarioFilter filtros de listado de registros de inventario.
type InventarioFilter struct {
	Status     *entity.Status
	SucursalID string
	Tipo       *entity.ItemType
}

// InventarioRepository define el puerto de persistencia para Inventario (stock actual).
// Debe garantizar a lo sumo un registro por (tipo, ítem, sucursal) bajo acceso concurrente;
// GetForUpdate bloquea la fila dentro de la transacción en curso.
type InventarioRepository interface {
	Create(ctx context.Context, inventario *entity.Inventario) error
	GetByID(ctx context.Context, id string) (*entity.Inventario, error)
	// FindByItemAndSucursal devuelve el registro del ítem en la sucursal, o nil si no existe.
	FindByItemAndSucursal(ctx context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error)
	// GetForUpdate es FindByItemAndSucursal con bloqueo de fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido sobre repositorios atados a una transacción.
	GetForUpdate(ctx context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error)
	// UpdateStock aplica el nuevo stock y registra el usuario que lo afectó.
	UpdateStock(ctx context.Context, id string, stockActual int, usuarioID string) error
	Update(ctx context.Context, inventario *entity.Inventario) error
	List(ctx context.Context, f InventarioFilter, limit, offset int) ([]*entity.Inventario, int, error)
}

package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// SucursalFilter filtros de listado de sucursales.
type SucursalFilter struct {
	Status *entity.Status
	Nombre string // coincidencia parcial
}

// SucursalRepository define el puerto de persistencia para Sucursal.
type SucursalRepository interface {
	Create(ctx context.Context, sucursal *entity.Sucursal) error
	GetByID(ctx context.Context, id string) (*entity.Sucursal, error)
	Update(ctx context.Context, sucursal *entity.Sucursal) error
	List(ctx context.Context, f SucursalFilter, limit, offset int) ([]*entity.Sucursal, int, error)
	// ExistsActive verifica existencia de una sucursal activa (validador del motor de movimientos).
	ExistsActive(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// ProveedorFilter filtros de listado de proveedores.
type ProveedorFilter struct {
	Status *entity.Status
	Nombre string
}

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(ctx context.Context, proveedor *entity.Proveedor) error
	GetByID(ctx context.Context, id string) (*entity.Proveedor, error)
	Update(ctx context.Context, proveedor *entity.Proveedor) error
	List(ctx context.Context, f ProveedorFilter, limit, offset int) ([]*entity.Proveedor, int, error)
}

package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// ProductoFilter filtros de listado de productos.
type ProductoFilter struct {
	Status      *entity.Status
	Nombre      string
	CategoriaID string
}

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	Update(ctx context.Context, producto *entity.Producto) error
	List(ctx context.Context, f ProductoFilter, limit, offset int) ([]*entity.Producto, int, error)
	// ExistsActive verifica existencia de un producto activo (validador del motor de movimientos).
	ExistsActive(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// MaterialFilter filtros de listado de materiales.
type MaterialFilter struct {
	Status      *entity.Status
	Nombre      string
	CategoriaID string
	ProveedorID string
}

// MaterialRepository define el puerto de persistencia para Material.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	List(ctx context.Context, f MaterialFilter, limit, offset int) ([]*entity.Material, int, error)
	// ExistsActive verifica existencia de un material activo (validador del motor de movimientos).
	ExistsActive(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// ColorFilter filtros de listado de colores.
type ColorFilter struct {
	Status *entity.Status
	Nombre string
}

// ColorRepository define el puerto de persistencia para Color.
type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	GetByID(ctx context.Context, id string) (*entity.Color, error)
	Update(ctx context.Context, color *entity.Color) error
	List(ctx context.Context, f ColorFilter, limit, offset int) ([]*entity.Color, int, error)
}

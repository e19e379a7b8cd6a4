package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// CategoriaFilter filtros de listado de categorías.
type CategoriaFilter struct {
	Status *entity.Status
	Nombre string
}

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id string) (*entity.Categoria, error)
	Update(ctx context.Context, categoria *entity.Categoria) error
	List(ctx context.Context, f CategoriaFilter, limit, offset int) ([]*entity.Categoria, int, error)
}

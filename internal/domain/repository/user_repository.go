package repository

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	Status     *entity.Status
	SucursalID string
	Role       string
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, f UserFilter, limit, offset int) ([]*entity.User, int, error)
	// ExistsActive verifica que el usuario actuante exista y esté activo.
	ExistsActive(ctx context.Context, id string) (bool, error)
}

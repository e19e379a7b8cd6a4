package inventory

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad entre el log de movimientos y el stock: Commit si fn retorna nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoInventarioRepository,
		invRepo repository.InventarioRepository,
	) error) error
}

// ExistenceChecker validador de referencias: confirma que la entidad exista y esté activa.
// Lo satisfacen los repositorios de Material, Producto, Sucursal y User.
type ExistenceChecker interface {
	ExistsActive(ctx context.Context, id string) (bool, error)
}

package inventory

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
)

// RegisterFromRequest adapta el body HTTP al caso de uso RegisterMovement.
// usuarioID proviene del token (middleware de auth), nunca del body.
// Según el tipo se toma material_id o producto_id; el campo contrario se descarta
// aunque el cliente lo haya enviado.
func (uc *RegisterMovementUseCase) RegisterFromRequest(ctx context.Context, usuarioID string, in dto.RegisterMovimientoRequest) (*entity.MovimientoInventario, error) {
	var item entity.ItemRef
	switch entity.ItemType(in.Tipo) {
	case entity.ItemTypeMaterial:
		item = entity.MaterialRef(in.MaterialID)
	case entity.ItemTypeProducto:
		item = entity.ProductoRef(in.ProductoID)
	default:
		// ItemRef cero: RegisterMovement lo rechaza como referencia inválida.
	}
	input := MovementInput{
		Motivo:         entity.Motivo(in.Motivo),
		Descripcion:    in.Descripcion,
		Item:           item,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		SucursalID:     in.SucursalID,
		UsuarioID:      usuarioID,
	}
	return uc.RegisterMovement(ctx, input)
}

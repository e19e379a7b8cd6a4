package inventory

import (
	"context"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// MovimientoQueryUseCase consultas de solo lectura sobre el log de movimientos.
type MovimientoQueryUseCase struct {
	movRepo repository.MovimientoInventarioRepository
}

// NewMovimientoQueryUseCase construye el caso de uso.
func NewMovimientoQueryUseCase(movRepo repository.MovimientoInventarioRepository) *MovimientoQueryUseCase {
	return &MovimientoQueryUseCase{movRepo: movRepo}
}

// GetByID obtiene un movimiento por ID, o nil si no existe.
func (uc *MovimientoQueryUseCase) GetByID(ctx context.Context, id string) (*dto.MovimientoResponse, error) {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	out := ToMovimientoResponse(mov)
	return &out, nil
}

// List lista movimientos con filtros y paginación, más recientes primero.
func (uc *MovimientoQueryUseCase) List(ctx context.Context, f repository.MovimientoFilter, page dto.PageRequest) (*dto.MovimientoListResponse, error) {
	list, total, err := uc.movRepo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// ToMovimientoResponse convierte la entidad al DTO de salida.
func ToMovimientoResponse(m *entity.MovimientoInventario) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:             m.ID,
		Motivo:         string(m.Motivo),
		Descripcion:    m.Descripcion,
		Tipo:           string(m.Item.Tipo()),
		MaterialID:     m.Item.MaterialID(),
		ProductoID:     m.Item.ProductoID(),
		Cantidad:       m.Cantidad,
		PrecioUnitario: m.PrecioUnitario,
		Total:          m.Total,
		SucursalID:     m.SucursalID,
		UsuarioID:      m.UsuarioID,
		CreatedAt:      m.CreatedAt,
	}
}

package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// InventarioUseCase administración de registros de inventario: alta manual,
// consulta, reasignación de sucursal y borrado lógico. El stock solo lo muta
// RegisterMovementUseCase.
type InventarioUseCase struct {
	invRepo       repository.InventarioRepository
	materialCheck ExistenceChecker
	productoCheck ExistenceChecker
	sucursalCheck ExistenceChecker
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(
	invRepo repository.InventarioRepository,
	materialCheck, productoCheck, sucursalCheck ExistenceChecker,
) *InventarioUseCase {
	return &InventarioUseCase{
		invRepo:       invRepo,
		materialCheck: materialCheck,
		productoCheck: productoCheck,
		sucursalCheck: sucursalCheck,
	}
}

// Create da de alta manualmente un registro de inventario con stock 0.
// Rechaza duplicados sobre la misma combinación (tipo, ítem, sucursal).
func (uc *InventarioUseCase) Create(ctx context.Context, usuarioID string, in dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	if usuarioID == "" {
		return nil, domain.ErrUnauthorized
	}
	var item entity.ItemRef
	switch entity.ItemType(in.Tipo) {
	case entity.ItemTypeMaterial:
		item = entity.MaterialRef(in.MaterialID)
	case entity.ItemTypeProducto:
		item = entity.ProductoRef(in.ProductoID)
	default:
		return nil, &domain.InvalidReferenceError{Campo: "tipo", ID: in.Tipo}
	}
	if item.ItemID() == "" {
		return nil, &domain.InvalidReferenceError{Campo: campoItem(item.Tipo()), ID: ""}
	}

	var (
		ok  bool
		err error
	)
	if item.Tipo() == entity.ItemTypeMaterial {
		ok, err = uc.materialCheck.ExistsActive(ctx, item.ItemID())
	} else {
		ok, err = uc.productoCheck.ExistsActive(ctx, item.ItemID())
	}
	if err != nil {
		return nil, fmt.Errorf("verificar ítem: %w", err)
	}
	if !ok {
		return nil, &domain.InvalidReferenceError{Campo: campoItem(item.Tipo()), ID: item.ItemID()}
	}
	ok, err = uc.sucursalCheck.ExistsActive(ctx, in.SucursalID)
	if err != nil {
		return nil, fmt.Errorf("verificar sucursal: %w", err)
	}
	if !ok {
		return nil, &domain.InvalidReferenceError{Campo: "sucursal_id", ID: in.SucursalID}
	}

	existing, err := uc.invRepo.FindByItemAndSucursal(ctx, item, in.SucursalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el ítem ya fue registrado en la sucursal", domain.ErrDuplicate)
	}

	now := time.Now()
	inv := &entity.Inventario{
		ID:          uuid.New().String(),
		Item:        item,
		SucursalID:  in.SucursalID,
		StockActual: 0,
		UsuarioID:   usuarioID,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	out := toInventarioResponse(inv)
	return &out, nil
}

// GetByID obtiene un registro por ID, o nil si no existe.
func (uc *InventarioUseCase) GetByID(ctx context.Context, id string) (*dto.InventarioResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	out := toInventarioResponse(inv)
	return &out, nil
}

// Update reasigna la sucursal de un registro. Tipo e ítem son inmutables tras la creación.
func (uc *InventarioUseCase) Update(ctx context.Context, id, usuarioID string, in dto.UpdateInventarioRequest) (*dto.InventarioResponse, error) {
	if usuarioID == "" {
		return nil, domain.ErrUnauthorized
	}
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	if in.SucursalID != nil {
		ok, err := uc.sucursalCheck.ExistsActive(ctx, *in.SucursalID)
		if err != nil {
			return nil, fmt.Errorf("verificar sucursal: %w", err)
		}
		if !ok {
			return nil, &domain.InvalidReferenceError{Campo: "sucursal_id", ID: *in.SucursalID}
		}
		inv.SucursalID = *in.SucursalID
	}
	inv.UsuarioID = usuarioID
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	out := toInventarioResponse(inv)
	return &out, nil
}

// List lista registros de inventario con filtros y paginación.
func (uc *InventarioUseCase) List(ctx context.Context, f repository.InventarioFilter, page dto.PageRequest) (*dto.InventarioListResponse, error) {
	list, total, err := uc.invRepo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventarioResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInventarioResponse(inv))
	}
	return &dto.InventarioListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el registro como inactivo. No altera el stock.
func (uc *InventarioUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(inv *entity.Inventario) { inv.Disable() })
}

// Restore reactiva un registro inactivo.
func (uc *InventarioUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(inv *entity.Inventario) { inv.Restore() })
}

func (uc *InventarioUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Inventario)) error {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	transition(inv)
	inv.UpdatedAt = time.Now()
	return uc.invRepo.Update(ctx, inv)
}

func toInventarioResponse(inv *entity.Inventario) dto.InventarioResponse {
	return dto.InventarioResponse{
		ID:          inv.ID,
		Tipo:        string(inv.Item.Tipo()),
		MaterialID:  inv.Item.MaterialID(),
		ProductoID:  inv.Item.ProductoID(),
		SucursalID:  inv.SucursalID,
		StockActual: inv.StockActual,
		UsuarioID:   inv.UsuarioID,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

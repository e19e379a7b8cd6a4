package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (entrada, salida, ajuste)
// de forma transaccional: inserta el movimiento, ubica o crea el registro de inventario
// con bloqueo de fila (SELECT FOR UPDATE), verifica suficiencia y aplica el delta.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	materialCheck ExistenceChecker
	productoCheck ExistenceChecker
	sucursalCheck ExistenceChecker
	userCheck     ExistenceChecker
}

// NewRegisterMovementUseCase construye el caso de uso. Los checkers son los
// repositorios de Material, Producto, Sucursal y User (validadores de existencia).
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	materialCheck, productoCheck, sucursalCheck, userCheck ExistenceChecker,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		materialCheck: materialCheck,
		productoCheck: productoCheck,
		sucursalCheck: sucursalCheck,
		userCheck:     userCheck,
	}
}

// MovementInput entrada para registrar un movimiento.
// Cantidad es la magnitud (>= 1) para entrada/salida; para ajuste lleva signo:
// positiva suma, negativa resta (sujeta a la misma verificación de suficiencia que salida).
// UsuarioID proviene de la sesión autenticada, nunca del cuerpo de la petición.
type MovementInput struct {
	Motivo         entity.Motivo
	Descripcion    string
	Item           entity.ItemRef
	Cantidad       int
	PrecioUnitario *decimal.Decimal // obligatorio (>= 0) para Producto; opcional para Material
	SucursalID     string
	UsuarioID      string
}

// RegisterMovement valida la petición, abre una transacción y ejecuta el algoritmo:
// insertar movimiento -> bloquear/crear registro de inventario -> verificar suficiencia
// -> aplicar delta. Todo persiste o nada persiste.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.MovimientoInventario, error) {
	if input.UsuarioID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !input.Motivo.Valid() {
		return nil, fmt.Errorf("%w: motivo %q", domain.ErrInvalidInput, input.Motivo)
	}
	if !input.Item.Tipo().Valid() {
		return nil, &domain.InvalidReferenceError{Campo: "tipo", ID: string(input.Item.Tipo())}
	}
	if input.Item.ItemID() == "" {
		return nil, &domain.InvalidReferenceError{Campo: campoItem(input.Item.Tipo()), ID: ""}
	}
	switch input.Motivo {
	case entity.MotivoEntrada, entity.MotivoSalida:
		if input.Cantidad < 1 {
			return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1 para entradas y salidas", domain.ErrInvalidInput)
		}
	case entity.MotivoAjuste:
		if input.Cantidad == 0 {
			return nil, fmt.Errorf("%w: la cantidad de un ajuste no puede ser cero", domain.ErrInvalidInput)
		}
	}

	precio := decimal.Zero
	if input.Item.Tipo() == entity.ItemTypeProducto {
		if input.PrecioUnitario == nil {
			return nil, fmt.Errorf("%w: el precio unitario es obligatorio para movimientos de Producto", domain.ErrInvalidInput)
		}
		if input.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
		precio = *input.PrecioUnitario
	} else if input.PrecioUnitario != nil {
		if input.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
		precio = *input.PrecioUnitario
	}

	if err := uc.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	// Total solo aplica a Producto; para Material queda en 0 aunque haya precio.
	total := decimal.Zero
	if input.Item.Tipo() == entity.ItemTypeProducto {
		total = decimal.NewFromInt(int64(input.Cantidad)).Mul(precio)
	}

	now := time.Now()
	mov := &entity.MovimientoInventario{
		ID:             uuid.New().String(),
		Motivo:         input.Motivo,
		Descripcion:    input.Descripcion,
		Item:           input.Item,
		Cantidad:       input.Cantidad,
		PrecioUnitario: precio,
		Total:          total,
		SucursalID:     input.SucursalID,
		UsuarioID:      input.UsuarioID,
		CreatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoInventarioRepository,
		invRepo repository.InventarioRepository,
	) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return fmt.Errorf("crear movimiento: %w", err)
		}

		inv, err := invRepo.GetForUpdate(ctx, input.Item, input.SucursalID)
		if err != nil {
			return err
		}
		if inv == nil {
			// Nunca se crea registro para una salida contra stock no rastreado.
			if input.Motivo == entity.MotivoSalida {
				return domain.ErrInsufficientLedger
			}
			inv = &entity.Inventario{
				ID:          uuid.New().String(),
				Item:        input.Item,
				SucursalID:  input.SucursalID,
				StockActual: 0,
				UsuarioID:   input.UsuarioID,
				Status:      entity.StatusActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := invRepo.Create(ctx, inv); err != nil {
				if !errors.Is(err, domain.ErrDuplicate) {
					return err
				}
				// Otro worker creó la fila entre el lookup y el insert: releer bajo bloqueo.
				inv, err = invRepo.GetForUpdate(ctx, input.Item, input.SucursalID)
				if err != nil {
					return err
				}
				if inv == nil {
					return fmt.Errorf("registro de inventario desapareció tras conflicto de creación")
				}
			}
		}

		delta := input.Cantidad
		if input.Motivo == entity.MotivoSalida {
			delta = -input.Cantidad
		}
		if delta < 0 && inv.StockActual < -delta {
			return &domain.InsufficientStockError{Actual: inv.StockActual, Solicitado: -delta}
		}

		return invRepo.UpdateStock(ctx, inv.ID, inv.StockActual+delta, input.UsuarioID)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// validateReferences confirma que el ítem, la sucursal y el usuario actuante existan y estén activos.
func (uc *RegisterMovementUseCase) validateReferences(ctx context.Context, input MovementInput) error {
	var (
		ok  bool
		err error
	)
	switch input.Item.Tipo() {
	case entity.ItemTypeMaterial:
		ok, err = uc.materialCheck.ExistsActive(ctx, input.Item.ItemID())
	case entity.ItemTypeProducto:
		ok, err = uc.productoCheck.ExistsActive(ctx, input.Item.ItemID())
	}
	if err != nil {
		return fmt.Errorf("verificar ítem: %w", err)
	}
	if !ok {
		return &domain.InvalidReferenceError{Campo: campoItem(input.Item.Tipo()), ID: input.Item.ItemID()}
	}

	ok, err = uc.sucursalCheck.ExistsActive(ctx, input.SucursalID)
	if err != nil {
		return fmt.Errorf("verificar sucursal: %w", err)
	}
	if !ok {
		return &domain.InvalidReferenceError{Campo: "sucursal_id", ID: input.SucursalID}
	}

	ok, err = uc.userCheck.ExistsActive(ctx, input.UsuarioID)
	if err != nil {
		return fmt.Errorf("verificar usuario: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func campoItem(tipo entity.ItemType) string {
	if tipo == entity.ItemTypeProducto {
		return "producto_id"
	}
	return "material_id"
}

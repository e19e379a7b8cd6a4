package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/inventory"
	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: store en memoria con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

const (
	materialID = "00000000-0000-0000-0000-0000000000a1"
	productoID = "00000000-0000-0000-0000-0000000000b2"
	sucursalID = "00000000-0000-0000-0000-0000000000c3"
	usuarioID  = "00000000-0000-0000-0000-0000000000d4"
)

func invKey(item entity.ItemRef, sucursalID string) string {
	return string(item.Tipo()) + "|" + item.ItemID() + "|" + sucursalID
}

type fakeState struct {
	movs []entity.MovimientoInventario
	invs map[string]entity.Inventario
}

func newFakeState() *fakeState {
	return &fakeState{invs: make(map[string]entity.Inventario)}
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		movs: append([]entity.MovimientoInventario(nil), s.movs...),
		invs: make(map[string]entity.Inventario, len(s.invs)),
	}
	for k, v := range s.invs {
		c.invs[k] = v
	}
	return c
}

// fakeTxRunner emula la transacción: fn trabaja sobre una copia y solo un
// Run a la vez toca el estado (equivalente al bloqueo de fila del motor real).
// Si fn falla, la copia se descarta: rollback total.
type fakeTxRunner struct {
	mu    sync.Mutex
	state *fakeState
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoInventarioRepository,
	invRepo repository.InventarioRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staged := r.state.clone()
	if err := fn(&fakeMovRepo{s: staged}, &fakeInvRepo{s: staged}); err != nil {
		return err
	}
	r.state = staged
	return nil
}

type fakeMovRepo struct{ s *fakeState }

func (r *fakeMovRepo) Create(_ context.Context, m *entity.MovimientoInventario) error {
	r.s.movs = append(r.s.movs, *m)
	return nil
}

func (r *fakeMovRepo) GetByID(_ context.Context, id string) (*entity.MovimientoInventario, error) {
	for i := range r.s.movs {
		if r.s.movs[i].ID == id {
			m := r.s.movs[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovRepo) List(_ context.Context, _ repository.MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, int, error) {
	var out []*entity.MovimientoInventario
	for i := len(r.s.movs) - 1; i >= 0; i-- {
		m := r.s.movs[i]
		out = append(out, &m)
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type fakeInvRepo struct{ s *fakeState }

func (r *fakeInvRepo) Create(_ context.Context, inv *entity.Inventario) error {
	k := invKey(inv.Item, inv.SucursalID)
	if _, ok := r.s.invs[k]; ok {
		return domain.ErrDuplicate
	}
	r.s.invs[k] = *inv
	return nil
}

func (r *fakeInvRepo) GetByID(_ context.Context, id string) (*entity.Inventario, error) {
	for _, v := range r.s.invs {
		if v.ID == id {
			inv := v
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvRepo) FindByItemAndSucursal(_ context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error) {
	if v, ok := r.s.invs[invKey(item, sucursalID)]; ok {
		inv := v
		return &inv, nil
	}
	return nil, nil
}

func (r *fakeInvRepo) GetForUpdate(ctx context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error) {
	return r.FindByItemAndSucursal(ctx, item, sucursalID)
}

func (r *fakeInvRepo) UpdateStock(_ context.Context, id string, stockActual int, usuarioID string) error {
	for k, v := range r.s.invs {
		if v.ID == id {
			v.StockActual = stockActual
			v.UsuarioID = usuarioID
			v.UpdatedAt = time.Now()
			r.s.invs[k] = v
			return nil
		}
	}
	return fmt.Errorf("inventario %s no existe", id)
}

func (r *fakeInvRepo) Update(_ context.Context, inv *entity.Inventario) error {
	r.s.invs[invKey(inv.Item, inv.SucursalID)] = *inv
	return nil
}

func (r *fakeInvRepo) List(_ context.Context, _ repository.InventarioFilter, _, _ int) ([]*entity.Inventario, int, error) {
	return nil, 0, nil
}

// staticChecker validador de existencia respaldado por un set fijo de IDs activos.
type staticChecker map[string]bool

func (c staticChecker) ExistsActive(_ context.Context, id string) (bool, error) {
	return c[id], nil
}

type engineFixture struct {
	uc *inventory.RegisterMovementUseCase
	tx *fakeTxRunner
}

func newEngine(t *testing.T) *engineFixture {
	t.Helper()
	tx := &fakeTxRunner{state: newFakeState()}
	uc := inventory.NewRegisterMovementUseCase(
		tx,
		staticChecker{materialID: true},
		staticChecker{productoID: true},
		staticChecker{sucursalID: true},
		staticChecker{usuarioID: true},
	)
	return &engineFixture{uc: uc, tx: tx}
}

// seedStock inserta directamente un registro de inventario con el stock dado.
func (f *engineFixture) seedStock(item entity.ItemRef, stock int) {
	f.tx.state.invs[invKey(item, sucursalID)] = entity.Inventario{
		ID:          "inv-" + item.ItemID(),
		Item:        item,
		SucursalID:  sucursalID,
		StockActual: stock,
		UsuarioID:   usuarioID,
		Status:      entity.StatusActive,
	}
}

func (f *engineFixture) stock(item entity.ItemRef) (int, bool) {
	inv, ok := f.tx.state.invs[invKey(item, sucursalID)]
	return inv.StockActual, ok
}

// movimientoRequest body de entrada de Material que además cuela un producto_id.
func movimientoRequest() dto.RegisterMovimientoRequest {
	return dto.RegisterMovimientoRequest{
		Motivo:     string(entity.MotivoEntrada),
		Tipo:       string(entity.ItemTypeMaterial),
		MaterialID: materialID,
		ProductoID: productoID,
		Cantidad:   2,
		SucursalID: sucursalID,
	}
}

func entradaMaterial(cantidad int) inventory.MovementInput {
	return inventory.MovementInput{
		Motivo:     entity.MotivoEntrada,
		Item:       entity.MaterialRef(materialID),
		Cantidad:   cantidad,
		SucursalID: sucursalID,
		UsuarioID:  usuarioID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos de aceptación
// ──────────────────────────────────────────────────────────────────────────────

// Entrada contra un ítem nunca visto: crea el registro de inventario en 0 y aplica el delta.
func TestRegisterMovement_EntradaCreaRegistroYSumaStock(t *testing.T) {
	f := newEngine(t)

	mov, err := f.uc.RegisterMovement(context.Background(), entradaMaterial(10))
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, entity.MotivoEntrada, mov.Motivo)
	assert.Equal(t, materialID, mov.Item.MaterialID())
	assert.Empty(t, mov.Item.ProductoID(), "la referencia contraria debe quedar vacía")
	assert.Equal(t, 10, mov.Cantidad)
	assert.True(t, mov.Total.IsZero(), "total debe ser 0 para Material")
	assert.Equal(t, usuarioID, mov.UsuarioID)
	assert.NotEmpty(t, mov.ID)

	stock, ok := f.stock(entity.MaterialRef(materialID))
	require.True(t, ok, "debe existir exactamente un registro de inventario")
	assert.Equal(t, 10, stock)
	assert.Len(t, f.tx.state.invs, 1)
	require.Len(t, f.tx.state.movs, 1)
	assert.Equal(t, mov.ID, f.tx.state.movs[0].ID)
}

// Entradas consecutivas sobre la misma clave reutilizan el mismo registro.
func TestRegisterMovement_EntradasAcumulanSobreLaMismaFila(t *testing.T) {
	f := newEngine(t)

	_, err := f.uc.RegisterMovement(context.Background(), entradaMaterial(10))
	require.NoError(t, err)
	_, err = f.uc.RegisterMovement(context.Background(), entradaMaterial(5))
	require.NoError(t, err)

	stock, _ := f.stock(entity.MaterialRef(materialID))
	assert.Equal(t, 15, stock)
	assert.Len(t, f.tx.state.invs, 1)
	assert.Len(t, f.tx.state.movs, 2)
}

// Salida con stock suficiente descuenta la cantidad exacta.
func TestRegisterMovement_SalidaDescuentaStock(t *testing.T) {
	f := newEngine(t)
	f.seedStock(entity.MaterialRef(materialID), 10)

	mov, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Motivo:     entity.MotivoSalida,
		Item:       entity.MaterialRef(materialID),
		Cantidad:   4,
		SucursalID: sucursalID,
		UsuarioID:  usuarioID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MotivoSalida, mov.Motivo)
	assert.Equal(t, 4, mov.Cantidad)
	stock, _ := f.stock(entity.MaterialRef(materialID))
	assert.Equal(t, 6, stock)
	assert.Len(t, f.tx.state.movs, 1)
}

// Salida que excede el stock: error tipado con contexto y rollback total
// (ni el movimiento ni el stock cambian).
func TestRegisterMovement_SalidaInsuficiente_RollbackTotal(t *testing.T) {
	f := newEngine(t)
	f.seedStock(entity.MaterialRef(materialID), 10)

	_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Motivo:     entity.MotivoSalida,
		Item:       entity.MaterialRef(materialID),
		Cantidad:   15,
		SucursalID: sucursalID,
		UsuarioID:  usuarioID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 10, insuf.Actual)
	assert.Equal(t, 15, insuf.Solicitado)

	stock, _ := f.stock(entity.MaterialRef(materialID))
	assert.Equal(t, 10, stock, "el stock no debe cambiar tras un rechazo")
	assert.Empty(t, f.tx.state.movs, "el movimiento no debe persistir tras un rechazo")
}

// Salida contra un ítem sin registro de inventario: nunca se crea la fila.
func TestRegisterMovement_SalidaSinRegistro_Falla(t *testing.T) {
	f := newEngine(t)

	_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Motivo:     entity.MotivoSalida,
		Item:       entity.MaterialRef(materialID),
		Cantidad:   1,
		SucursalID: sucursalID,
		UsuarioID:  usuarioID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientLedger)
	assert.Empty(t, f.tx.state.invs)
	assert.Empty(t, f.tx.state.movs)
}

// Movimiento de Producto: total = cantidad * precio_unitario.
func TestRegisterMovement_ProductoCalculaTotal(t *testing.T) {
	f := newEngine(t)
	precio := decimal.RequireFromString("12.50")

	mov, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Motivo:         entity.MotivoEntrada,
		Item:           entity.ProductoRef(productoID),
		Cantidad:       5,
		PrecioUnitario: &precio,
		SucursalID:     sucursalID,
		UsuarioID:      usuarioID,
	})
	require.NoError(t, err)

	assert.True(t, mov.Total.Equal(decimal.RequireFromString("62.50")),
		"total esperado 62.50, obtenido %s", mov.Total)
	assert.True(t, mov.PrecioUnitario.Equal(precio))
	stock, _ := f.stock(entity.ProductoRef(productoID))
	assert.Equal(t, 5, stock)
}

// Para Material el total queda en 0 aunque venga precio unitario.
func TestRegisterMovement_MaterialTotalSiempreCero(t *testing.T) {
	f := newEngine(t)
	precio := decimal.RequireFromString("99.99")

	mov, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Motivo:         entity.MotivoEntrada,
		Item:           entity.MaterialRef(materialID),
		Cantidad:       3,
		PrecioUnitario: &precio,
		SucursalID:     sucursalID,
		UsuarioID:      usuarioID,
	})
	require.NoError(t, err)
	assert.True(t, mov.Total.IsZero())
	assert.True(t, mov.PrecioUnitario.Equal(precio), "el precio informado sí se conserva")
}

// Ajuste con signo: positivo suma, negativo resta con verificación de suficiencia.
func TestRegisterMovement_Ajustes(t *testing.T) {
	t.Run("positivo suma", func(t *testing.T) {
		f := newEngine(t)
		f.seedStock(entity.MaterialRef(materialID), 7)
		_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
			Motivo:     entity.MotivoAjuste,
			Item:       entity.MaterialRef(materialID),
			Cantidad:   3,
			SucursalID: sucursalID,
			UsuarioID:  usuarioID,
		})
		require.NoError(t, err)
		stock, _ := f.stock(entity.MaterialRef(materialID))
		assert.Equal(t, 10, stock)
	})

	t.Run("negativo resta", func(t *testing.T) {
		f := newEngine(t)
		f.seedStock(entity.MaterialRef(materialID), 7)
		_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
			Motivo:     entity.MotivoAjuste,
			Item:       entity.MaterialRef(materialID),
			Cantidad:   -2,
			SucursalID: sucursalID,
			UsuarioID:  usuarioID,
		})
		require.NoError(t, err)
		stock, _ := f.stock(entity.MaterialRef(materialID))
		assert.Equal(t, 5, stock)
	})

	t.Run("negativo que excede el stock es rechazado", func(t *testing.T) {
		f := newEngine(t)
		f.seedStock(entity.MaterialRef(materialID), 7)
		_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
			Motivo:     entity.MotivoAjuste,
			Item:       entity.MaterialRef(materialID),
			Cantidad:   -8,
			SucursalID: sucursalID,
			UsuarioID:  usuarioID,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		stock, _ := f.stock(entity.MaterialRef(materialID))
		assert.Equal(t, 7, stock)
	})

	t.Run("negativo sin registro previo hace rollback de la fila creada", func(t *testing.T) {
		f := newEngine(t)
		_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
			Motivo:     entity.MotivoAjuste,
			Item:       entity.MaterialRef(materialID),
			Cantidad:   -1,
			SucursalID: sucursalID,
			UsuarioID:  usuarioID,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Empty(t, f.tx.state.invs, "la fila creada en la tx debe desaparecer con el rollback")
		assert.Empty(t, f.tx.state.movs)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación previa a la transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Validaciones(t *testing.T) {
	precio := decimal.RequireFromString("10")
	precioNegativo := decimal.RequireFromString("-1")

	cases := []struct {
		name    string
		mutate  func(in *inventory.MovementInput)
		wantErr error
	}{
		{
			name:    "motivo inválido",
			mutate:  func(in *inventory.MovementInput) { in.Motivo = "traslado" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "tipo de ítem inválido",
			mutate: func(in *inventory.MovementInput) {
				in.Item = entity.ItemRef{}
			},
			wantErr: domain.ErrInvalidReference,
		},
		{
			name:    "cantidad cero en entrada",
			mutate:  func(in *inventory.MovementInput) { in.Cantidad = 0 },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "cantidad negativa en salida",
			mutate: func(in *inventory.MovementInput) {
				in.Motivo = entity.MotivoSalida
				in.Cantidad = -3
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "cantidad cero en ajuste",
			mutate: func(in *inventory.MovementInput) {
				in.Motivo = entity.MotivoAjuste
				in.Cantidad = 0
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "producto sin precio unitario",
			mutate: func(in *inventory.MovementInput) {
				in.Item = entity.ProductoRef(productoID)
				in.PrecioUnitario = nil
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "precio unitario negativo",
			mutate: func(in *inventory.MovementInput) {
				in.Item = entity.ProductoRef(productoID)
				in.PrecioUnitario = &precioNegativo
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "material inexistente",
			mutate: func(in *inventory.MovementInput) {
				in.Item = entity.MaterialRef("otro-material")
			},
			wantErr: domain.ErrInvalidReference,
		},
		{
			name: "producto inexistente",
			mutate: func(in *inventory.MovementInput) {
				in.Item = entity.ProductoRef("otro-producto")
				in.PrecioUnitario = &precio
			},
			wantErr: domain.ErrInvalidReference,
		},
		{
			name:    "sucursal inexistente",
			mutate:  func(in *inventory.MovementInput) { in.SucursalID = "otra-sucursal" },
			wantErr: domain.ErrInvalidReference,
		},
		{
			name:    "usuario vacío",
			mutate:  func(in *inventory.MovementInput) { in.UsuarioID = "" },
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "usuario inactivo",
			mutate:  func(in *inventory.MovementInput) { in.UsuarioID = "usuario-deshabilitado" },
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngine(t)
			in := entradaMaterial(5)
			tc.mutate(&in)

			_, err := f.uc.RegisterMovement(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			// Falla rápida: nada debe haberse escrito.
			assert.Empty(t, f.tx.state.movs)
			assert.Empty(t, f.tx.state.invs)
		})
	}
}

// El adaptador HTTP descarta la referencia contraria aunque el cliente la envíe.
func TestRegisterFromRequest_DescartaReferenciaContraria(t *testing.T) {
	f := newEngine(t)

	mov, err := f.uc.RegisterFromRequest(context.Background(), usuarioID, movimientoRequest())
	require.NoError(t, err)
	assert.Equal(t, materialID, mov.Item.MaterialID())
	assert.Empty(t, mov.Item.ProductoID())
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: N salidas simultáneas nunca dejan el stock negativo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_SalidasConcurrentes(t *testing.T) {
	const (
		stockInicial = 10
		cantidad     = 3
		workers      = 8
	)
	f := newEngine(t)
	f.seedStock(entity.MaterialRef(materialID), stockInicial)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
				Motivo:     entity.MotivoSalida,
				Item:       entity.MaterialRef(materialID),
				Cantidad:   cantidad,
				SucursalID: sucursalID,
				UsuarioID:  usuarioID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	exitos, rechazos := 0, 0
	for err := range errs {
		if err == nil {
			exitos++
			continue
		}
		require.True(t, errors.Is(err, domain.ErrInsufficientStock),
			"los rechazos deben ser por stock insuficiente, no %v", err)
		rechazos++
	}

	// floor(10/3) = 3 salidas caben; el resto debe rechazarse.
	assert.Equal(t, 3, exitos)
	assert.Equal(t, workers-3, rechazos)

	stock, _ := f.stock(entity.MaterialRef(materialID))
	assert.Equal(t, stockInicial-exitos*cantidad, stock)
	assert.GreaterOrEqual(t, stock, 0, "el stock nunca puede quedar negativo")
	assert.Len(t, f.tx.state.movs, exitos, "solo las salidas aceptadas dejan movimiento")
}

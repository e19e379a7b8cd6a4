package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla lleva un índice único sobre (tipo, material_id, producto_id, sucursal_id);
// Create traduce la violación 23505 a domain.ErrDuplicate para que el caller
// pueda releer bajo bloqueo.
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioColumns = `id, tipo, material_id, producto_id, sucursal_id, stock_actual, usuario_id, status, created_at, updated_at`

// Create inserta un registro de inventario nuevo.
func (r *InventarioRepo) Create(ctx context.Context, inv *entity.Inventario) error {
	const query = `
		INSERT INTO inventarios
			(id, tipo, material_id, producto_id, sucursal_id, stock_actual, usuario_id, status, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	tipo, materialID, productoID := itemColumns(inv.Item)
	_, err := r.q.Exec(ctx, query,
		inv.ID, tipo, materialID, productoID, inv.SucursalID,
		inv.StockActual, inv.UsuarioID, string(inv.Status), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: inventario (tipo, ítem, sucursal)", domain.ErrDuplicate)
		}
		return fmt.Errorf("create inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID, o nil si no existe.
func (r *InventarioRepo) GetByID(ctx context.Context, id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios WHERE id = $1`
	inv, err := scanInventario(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return inv, nil
}

// FindByItemAndSucursal devuelve el registro del ítem en la sucursal, o nil si no existe.
func (r *InventarioRepo) FindByItemAndSucursal(ctx context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error) {
	return r.findByItem(ctx, item, sucursalID, false)
}

// GetForUpdate es FindByItemAndSucursal con bloqueo de fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *InventarioRepo) GetForUpdate(ctx context.Context, item entity.ItemRef, sucursalID string) (*entity.Inventario, error) {
	return r.findByItem(ctx, item, sucursalID, true)
}

func (r *InventarioRepo) findByItem(ctx context.Context, item entity.ItemRef, sucursalID string, forUpdate bool) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + `
		FROM inventarios
		WHERE tipo = $1
		  AND material_id IS NOT DISTINCT FROM $2
		  AND producto_id IS NOT DISTINCT FROM $3
		  AND sucursal_id = $4`
	if forUpdate {
		query += " FOR UPDATE"
	}
	tipo, materialID, productoID := itemColumns(item)
	inv, err := scanInventario(r.q.QueryRow(ctx, query, tipo, materialID, productoID, sucursalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventario: %w", err)
	}
	return inv, nil
}

// UpdateStock aplica el nuevo stock y registra el usuario que lo afectó.
func (r *InventarioRepo) UpdateStock(ctx context.Context, id string, stockActual int, usuarioID string) error {
	const query = `
		UPDATE inventarios
		SET stock_actual = $2, usuario_id = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, stockActual, usuarioID)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock: %w", domain.ErrNotFound)
	}
	return nil
}

// Update persiste sucursal, usuario y status (tipo e ítem son inmutables).
func (r *InventarioRepo) Update(ctx context.Context, inv *entity.Inventario) error {
	const query = `
		UPDATE inventarios
		SET sucursal_id = $2, usuario_id = $3, status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, inv.ID, inv.SucursalID, inv.UsuarioID, string(inv.Status), inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: inventario (tipo, ítem, sucursal)", domain.ErrDuplicate)
		}
		return fmt.Errorf("update inventario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventario: %w", domain.ErrNotFound)
	}
	return nil
}

// List lista registros con filtros opcionales, más recientes primero.
func (r *InventarioRepo) List(ctx context.Context, f repository.InventarioFilter, limit, offset int) ([]*entity.Inventario, int, error) {
	where := " WHERE 1=1"
	var args []any
	pos := 1
	add := func(cond string, val any) {
		where += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if f.Status != nil {
		add("status = $%d", string(*f.Status))
	}
	if f.SucursalID != "" {
		add("sucursal_id = $%d", f.SucursalID)
	}
	if f.Tipo != nil {
		add("tipo = $%d", string(*f.Tipo))
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM inventarios"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventarios: %w", err)
	}

	query := `SELECT ` + inventarioColumns + ` FROM inventarios` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventario
	for rows.Next() {
		inv, err := scanInventario(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, inv)
	}
	return list, total, rows.Err()
}

func scanInventario(row pgx.Row) (*entity.Inventario, error) {
	var (
		inv                    entity.Inventario
		tipo, status           string
		materialID, productoID *string
	)
	if err := row.Scan(
		&inv.ID, &tipo, &materialID, &productoID, &inv.SucursalID,
		&inv.StockActual, &inv.UsuarioID, &status, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	inv.Item = itemFromColumns(tipo, materialID, productoID)
	inv.Status = entity.Status(status)
	return &inv, nil
}

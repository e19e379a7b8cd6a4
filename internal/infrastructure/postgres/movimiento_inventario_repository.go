package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.MovimientoInventarioRepository = (*MovimientoInventarioRepo)(nil)

// MovimientoInventarioRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log es append-only: no hay UPDATE ni DELETE sobre movimientos_inventario.
type MovimientoInventarioRepo struct {
	q Querier
}

// NewMovimientoInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoInventarioRepository(q Querier) *MovimientoInventarioRepo {
	return &MovimientoInventarioRepo{q: q}
}

// itemColumns descompone un ItemRef en las columnas (tipo, material_id, producto_id),
// con la referencia contraria en NULL.
func itemColumns(item entity.ItemRef) (tipo string, materialID, productoID *string) {
	tipo = string(item.Tipo())
	if id := item.MaterialID(); id != "" {
		materialID = &id
	}
	if id := item.ProductoID(); id != "" {
		productoID = &id
	}
	return tipo, materialID, productoID
}

// itemFromColumns reconstruye el ItemRef a partir de las columnas persistidas.
func itemFromColumns(tipo string, materialID, productoID *string) entity.ItemRef {
	if entity.ItemType(tipo) == entity.ItemTypeProducto && productoID != nil {
		return entity.ProductoRef(*productoID)
	}
	if materialID != nil {
		return entity.MaterialRef(*materialID)
	}
	return entity.ItemRef{}
}

// Create persiste un movimiento de inventario.
func (r *MovimientoInventarioRepo) Create(ctx context.Context, m *entity.MovimientoInventario) error {
	const query = `
		INSERT INTO movimientos_inventario
			(id, motivo, descripcion, tipo, material_id, producto_id, cantidad, precio_unitario, total, sucursal_id, usuario_id, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	tipo, materialID, productoID := itemColumns(m.Item)
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.Motivo), m.Descripcion, tipo, materialID, productoID,
		m.Cantidad, m.PrecioUnitario, m.Total, m.SucursalID, m.UsuarioID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, o nil si no existe.
func (r *MovimientoInventarioRepo) GetByID(ctx context.Context, id string) (*entity.MovimientoInventario, error) {
	const query = `
		SELECT id, motivo, descripcion, tipo, material_id, producto_id, cantidad, precio_unitario, total, sucursal_id, usuario_id, created_at
		FROM movimientos_inventario WHERE id = $1`
	m, err := scanMovimiento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos con filtros opcionales, más recientes primero.
// Los filtros de fecha comparan a granularidad de día (created_at::date).
func (r *MovimientoInventarioRepo) List(ctx context.Context, f repository.MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, int, error) {
	where := " WHERE 1=1"
	var args []any
	pos := 1
	add := func(cond string, val any) {
		where += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if f.Motivo != nil {
		add("motivo = $%d", string(*f.Motivo))
	}
	if f.Tipo != nil {
		add("tipo = $%d", string(*f.Tipo))
	}
	if f.MaterialID != "" {
		add("material_id = $%d", f.MaterialID)
	}
	if f.ProductoID != "" {
		add("producto_id = $%d", f.ProductoID)
	}
	if f.SucursalID != "" {
		add("sucursal_id = $%d", f.SucursalID)
	}
	if f.StartDate != nil {
		add("created_at::date >= $%d::date", *f.StartDate)
	}
	if f.EndDate != nil {
		add("created_at::date <= $%d::date", *f.EndDate)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM movimientos_inventario" + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}

	query := `
		SELECT id, motivo, descripcion, tipo, material_id, producto_id, cantidad, precio_unitario, total, sucursal_id, usuario_id, created_at
		FROM movimientos_inventario` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimientoInventario
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

func scanMovimiento(row pgx.Row) (*entity.MovimientoInventario, error) {
	var (
		m                      entity.MovimientoInventario
		motivo, tipo           string
		materialID, productoID *string
	)
	if err := row.Scan(
		&m.ID, &motivo, &m.Descripcion, &tipo, &materialID, &productoID,
		&m.Cantidad, &m.PrecioUnitario, &m.Total, &m.SucursalID, &m.UsuarioID, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Motivo = entity.Motivo(motivo)
	m.Item = itemFromColumns(tipo, materialID, productoID)
	return &m, nil
}

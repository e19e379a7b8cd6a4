package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el repositorio.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, descripcion, categoria_id, talla, color_id, precio, codigo_barras, status, created_at, updated_at`

func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	const query = `
		INSERT INTO productos
			(id, nombre, descripcion, categoria_id, talla, color_id, precio, codigo_barras, status, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.Talla, p.ColorID,
		p.Precio, p.CodigoBarras, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	const query = `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria_id = $4, talla = $5, color_id = $6,
		    precio = $7, codigo_barras = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.Talla, p.ColorID,
		p.Precio, p.CodigoBarras, string(p.Status), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) List(ctx context.Context, f repository.ProductoFilter, limit, offset int) ([]*entity.Producto, int, error) {
	where := " WHERE 1=1"
	var args []any
	pos := 1
	if f.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, string(*f.Status))
		pos++
	}
	if f.Nombre != "" {
		where += fmt.Sprintf(" AND nombre ILIKE $%d", pos)
		args = append(args, "%"+f.Nombre+"%")
		pos++
	}
	if f.CategoriaID != "" {
		where += fmt.Sprintf(" AND categoria_id = $%d", pos)
		args = append(args, f.CategoriaID)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM productos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	query := `SELECT ` + productoColumns + ` FROM productos` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// ExistsActive verifica existencia de un producto activo (validador del motor de movimientos).
func (r *ProductoRepo) ExistsActive(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM productos WHERE id = $1 AND status = 'active')`
	var exists bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists producto: %w", err)
	}
	return exists, nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var (
		p      entity.Producto
		status string
	)
	if err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.Talla, &p.ColorID,
		&p.Precio, &p.CodigoBarras, &status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = entity.Status(status)
	return &p, nil
}

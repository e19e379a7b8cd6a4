package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el repositorio.
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	const query = `
		INSERT INTO proveedores (id, nombre, direccion, telefono, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Direccion, p.Telefono, string(p.Status), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	const query = `
		SELECT id, nombre, direccion, telefono, status, created_at, updated_at
		FROM proveedores WHERE id = $1`
	p, err := scanProveedor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return p, nil
}

func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) error {
	const query = `
		UPDATE proveedores
		SET nombre = $2, direccion = $3, telefono = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Direccion, p.Telefono, string(p.Status), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) List(ctx context.Context, f repository.ProveedorFilter, limit, offset int) ([]*entity.Proveedor, int, error) {
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

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM proveedores"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count proveedores: %w", err)
	}

	query := `
		SELECT id, nombre, direccion, telefono, status, created_at, updated_at
		FROM proveedores` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proveedor
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var (
		p      entity.Proveedor
		status string
	)
	if err := row.Scan(&p.ID, &p.Nombre, &p.Direccion, &p.Telefono, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = entity.Status(status)
	return &p, nil
}

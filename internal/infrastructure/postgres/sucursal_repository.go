package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo implementación de SucursalRepository sobre PostgreSQL.
type SucursalRepo struct {
	q Querier
}

// NewSucursalRepository construye el repositorio.
func NewSucursalRepository(q Querier) *SucursalRepo {
	return &SucursalRepo{q: q}
}

func (r *SucursalRepo) Create(ctx context.Context, s *entity.Sucursal) error {
	const query = `
		INSERT INTO sucursales (id, nombre, direccion, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Nombre, s.Direccion, string(s.Status), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create sucursal: %w", err)
	}
	return nil
}

func (r *SucursalRepo) GetByID(ctx context.Context, id string) (*entity.Sucursal, error) {
	const query = `
		SELECT id, nombre, direccion, status, created_at, updated_at
		FROM sucursales WHERE id = $1`
	s, err := scanSucursal(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal: %w", err)
	}
	return s, nil
}

func (r *SucursalRepo) Update(ctx context.Context, s *entity.Sucursal) error {
	const query = `
		UPDATE sucursales
		SET nombre = $2, direccion = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Nombre, s.Direccion, string(s.Status), s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sucursal: %w", err)
	}
	return nil
}

func (r *SucursalRepo) List(ctx context.Context, f repository.SucursalFilter, limit, offset int) ([]*entity.Sucursal, int, error) {
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
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM sucursales"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sucursales: %w", err)
	}

	query := `
		SELECT id, nombre, direccion, status, created_at, updated_at
		FROM sucursales` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sucursal
	for rows.Next() {
		s, err := scanSucursal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sucursal: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// ExistsActive verifica existencia de una sucursal activa (validador del motor de movimientos).
func (r *SucursalRepo) ExistsActive(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM sucursales WHERE id = $1 AND status = 'active')`
	var exists bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists sucursal: %w", err)
	}
	return exists, nil
}

func scanSucursal(row pgx.Row) (*entity.Sucursal, error) {
	var (
		s      entity.Sucursal
		status string
	)
	if err := row.Scan(&s.ID, &s.Nombre, &s.Direccion, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = entity.Status(status)
	return &s, nil
}

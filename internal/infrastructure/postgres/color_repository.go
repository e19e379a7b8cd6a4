package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.ColorRepository = (*ColorRepo)(nil)

// ColorRepo implementación de ColorRepository sobre PostgreSQL.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el repositorio.
func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

func (r *ColorRepo) Create(ctx context.Context, c *entity.Color) error {
	const query = `
		INSERT INTO colores (id, nombre, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, string(c.Status), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create color: %w", err)
	}
	return nil
}

func (r *ColorRepo) GetByID(ctx context.Context, id string) (*entity.Color, error) {
	const query = `SELECT id, nombre, status, created_at, updated_at FROM colores WHERE id = $1`
	c, err := scanColor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return c, nil
}

func (r *ColorRepo) Update(ctx context.Context, c *entity.Color) error {
	const query = `
		UPDATE colores SET nombre = $2, status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, string(c.Status), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update color: %w", err)
	}
	return nil
}

func (r *ColorRepo) List(ctx context.Context, f repository.ColorFilter, limit, offset int) ([]*entity.Color, int, error) {
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
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM colores"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count colores: %w", err)
	}

	query := `SELECT id, nombre, status, created_at, updated_at FROM colores` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list colores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Color
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanColor(row pgx.Row) (*entity.Color, error) {
	var (
		c      entity.Color
		status string
	)
	if err := row.Scan(&c.ID, &c.Nombre, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = entity.Status(status)
	return &c, nil
}

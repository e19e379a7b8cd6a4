package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el repositorio.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

func (r *CategoriaRepo) Create(ctx context.Context, c *entity.Categoria) error {
	const query = `
		INSERT INTO categorias (id, nombre, descripcion, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Descripcion, string(c.Status), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) GetByID(ctx context.Context, id string) (*entity.Categoria, error) {
	const query = `
		SELECT id, nombre, descripcion, status, created_at, updated_at
		FROM categorias WHERE id = $1`
	c, err := scanCategoria(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return c, nil
}

func (r *CategoriaRepo) Update(ctx context.Context, c *entity.Categoria) error {
	const query = `
		UPDATE categorias
		SET nombre = $2, descripcion = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Descripcion, string(c.Status), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) List(ctx context.Context, f repository.CategoriaFilter, limit, offset int) ([]*entity.Categoria, int, error) {
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
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM categorias"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categorias: %w", err)
	}

	query := `
		SELECT id, nombre, descripcion, status, created_at, updated_at
		FROM categorias` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categoria
	for rows.Next() {
		c, err := scanCategoria(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanCategoria(row pgx.Row) (*entity.Categoria, error) {
	var (
		c      entity.Categoria
		status string
	)
	if err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = entity.Status(status)
	return &c, nil
}

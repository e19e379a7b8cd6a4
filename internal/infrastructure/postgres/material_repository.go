package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el repositorio.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, cod_articulo, nombre, descripcion, categoria_id, proveedor_id, color_id, codigo_barras, status, created_at, updated_at`

func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	const query = `
		INSERT INTO materiales
			(id, cod_articulo, nombre, descripcion, categoria_id, proveedor_id, color_id, codigo_barras, status, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CodArticulo, m.Nombre, m.Descripcion, m.CategoriaID, m.ProveedorID,
		m.ColorID, m.CodigoBarras, string(m.Status), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiales WHERE id = $1`
	m, err := scanMaterial(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	const query = `
		UPDATE materiales
		SET cod_articulo = $2, nombre = $3, descripcion = $4, categoria_id = $5, proveedor_id = $6,
		    color_id = $7, codigo_barras = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CodArticulo, m.Nombre, m.Descripcion, m.CategoriaID, m.ProveedorID,
		m.ColorID, m.CodigoBarras, string(m.Status), m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) List(ctx context.Context, f repository.MaterialFilter, limit, offset int) ([]*entity.Material, int, error) {
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
	if f.ProveedorID != "" {
		where += fmt.Sprintf(" AND proveedor_id = $%d", pos)
		args = append(args, f.ProveedorID)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM materiales"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materiales: %w", err)
	}

	query := `SELECT ` + materialColumns + ` FROM materiales` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materiales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// ExistsActive verifica existencia de un material activo (validador del motor de movimientos).
func (r *MaterialRepo) ExistsActive(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM materiales WHERE id = $1 AND status = 'active')`
	var exists bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists material: %w", err)
	}
	return exists, nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var (
		m      entity.Material
		status string
	)
	if err := row.Scan(
		&m.ID, &m.CodArticulo, &m.Nombre, &m.Descripcion, &m.CategoriaID, &m.ProveedorID,
		&m.ColorID, &m.CodigoBarras, &status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.Status = entity.Status(status)
	return &m, nil
}

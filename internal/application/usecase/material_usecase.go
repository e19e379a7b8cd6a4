package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

// MaterialUseCase CRUD de materiales. Valida que la categoría, el proveedor
// y el color referenciados existan y estén activos.
type MaterialUseCase struct {
	repo          repository.MaterialRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
	colorRepo     repository.ColorRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	repo repository.MaterialRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
	colorRepo repository.ColorRepository,
) *MaterialUseCase {
	return &MaterialUseCase{
		repo:          repo,
		categoriaRepo: categoriaRepo,
		proveedorRepo: proveedorRepo,
		colorRepo:     colorRepo,
	}
}

// Create registra un material nuevo, activo por defecto.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CodArticulo) == "" {
		return nil, fmt.Errorf("%w: el código de artículo es obligatorio", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(ctx, in.CategoriaID, in.ProveedorID, in.ColorID); err != nil {
		return nil, err
	}
	now := time.Now()
	m := &entity.Material{
		ID:           uuid.New().String(),
		CodArticulo:  strings.TrimSpace(in.CodArticulo),
		Nombre:       nombre,
		Descripcion:  strings.TrimSpace(in.Descripcion),
		CategoriaID:  in.CategoriaID,
		ProveedorID:  in.ProveedorID,
		ColorID:      in.ColorID,
		CodigoBarras: strings.TrimSpace(in.CodigoBarras),
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// GetByID obtiene un material por ID, o nil si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Update modifica los campos presentes en la petición, revalidando referencias.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.CodArticulo != nil {
		cod := strings.TrimSpace(*in.CodArticulo)
		if cod == "" {
			return nil, fmt.Errorf("%w: el código de artículo no puede quedar vacío", domain.ErrInvalidInput)
		}
		m.CodArticulo = cod
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		m.Nombre = nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.CategoriaID != nil {
		if err := uc.checkCategoria(ctx, *in.CategoriaID); err != nil {
			return nil, err
		}
		m.CategoriaID = *in.CategoriaID
	}
	if in.ProveedorID != nil {
		if err := uc.checkProveedor(ctx, *in.ProveedorID); err != nil {
			return nil, err
		}
		m.ProveedorID = *in.ProveedorID
	}
	if in.ColorID != nil {
		if err := uc.checkColor(ctx, *in.ColorID); err != nil {
			return nil, err
		}
		m.ColorID = *in.ColorID
	}
	if in.CodigoBarras != nil {
		m.CodigoBarras = strings.TrimSpace(*in.CodigoBarras)
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// List lista materiales con filtros y paginación.
func (uc *MaterialUseCase) List(ctx context.Context, f repository.MaterialFilter, page dto.PageRequest) (*dto.MaterialListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el material como inactivo.
func (uc *MaterialUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(m *entity.Material) { m.Disable() })
}

// Restore reactiva un material inactivo.
func (uc *MaterialUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(m *entity.Material) { m.Restore() })
}

func (uc *MaterialUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Material)) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	transition(m)
	m.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, m)
}

func (uc *MaterialUseCase) checkRefs(ctx context.Context, categoriaID, proveedorID, colorID string) error {
	if err := uc.checkCategoria(ctx, categoriaID); err != nil {
		return err
	}
	if err := uc.checkProveedor(ctx, proveedorID); err != nil {
		return err
	}
	return uc.checkColor(ctx, colorID)
}

func (uc *MaterialUseCase) checkCategoria(ctx context.Context, id string) error {
	c, err := uc.categoriaRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar categoría: %w", err)
	}
	if c == nil || !c.Status.IsActive() {
		return &domain.InvalidReferenceError{Campo: "categoria_id", ID: id}
	}
	return nil
}

func (uc *MaterialUseCase) checkProveedor(ctx context.Context, id string) error {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar proveedor: %w", err)
	}
	if p == nil || !p.Status.IsActive() {
		return &domain.InvalidReferenceError{Campo: "proveedor_id", ID: id}
	}
	return nil
}

func (uc *MaterialUseCase) checkColor(ctx context.Context, id string) error {
	c, err := uc.colorRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar color: %w", err)
	}
	if c == nil || !c.Status.IsActive() {
		return &domain.InvalidReferenceError{Campo: "color_id", ID: id}
	}
	return nil
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:           m.ID,
		CodArticulo:  m.CodArticulo,
		Nombre:       m.Nombre,
		Descripcion:  m.Descripcion,
		CategoriaID:  m.CategoriaID,
		ProveedorID:  m.ProveedorID,
		ColorID:      m.ColorID,
		CodigoBarras: m.CodigoBarras,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

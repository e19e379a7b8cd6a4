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

// ProductoUseCase CRUD de productos terminados. Valida que la categoría y el
// color referenciados existan y estén activos.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	colorRepo     repository.ColorRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	colorRepo repository.ColorRepository,
) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo, colorRepo: colorRepo}
}

// Create registra un producto nuevo, activo por defecto.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Precio.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := uc.checkCategoria(ctx, in.CategoriaID); err != nil {
		return nil, err
	}
	if err := uc.checkColor(ctx, in.ColorID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Producto{
		ID:           uuid.New().String(),
		Nombre:       nombre,
		Descripcion:  strings.TrimSpace(in.Descripcion),
		CategoriaID:  in.CategoriaID,
		Talla:        strings.TrimSpace(in.Talla),
		ColorID:      in.ColorID,
		Precio:       in.Precio,
		CodigoBarras: strings.TrimSpace(in.CodigoBarras),
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductoResponse(p)
	return &out, nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductoResponse(p)
	return &out, nil
}

// Update modifica los campos presentes en la petición, revalidando referencias.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Nombre = nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.CategoriaID != nil {
		if err := uc.checkCategoria(ctx, *in.CategoriaID); err != nil {
			return nil, err
		}
		p.CategoriaID = *in.CategoriaID
	}
	if in.Talla != nil {
		p.Talla = strings.TrimSpace(*in.Talla)
	}
	if in.ColorID != nil {
		if err := uc.checkColor(ctx, *in.ColorID); err != nil {
			return nil, err
		}
		p.ColorID = *in.ColorID
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		p.Precio = *in.Precio
	}
	if in.CodigoBarras != nil {
		p.CodigoBarras = strings.TrimSpace(*in.CodigoBarras)
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProductoResponse(p)
	return &out, nil
}

// List lista productos con filtros y paginación.
func (uc *ProductoUseCase) List(ctx context.Context, f repository.ProductoFilter, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el producto como inactivo.
func (uc *ProductoUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(p *entity.Producto) { p.Disable() })
}

// Restore reactiva un producto inactivo.
func (uc *ProductoUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(p *entity.Producto) { p.Restore() })
}

func (uc *ProductoUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Producto)) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	transition(p)
	p.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, p)
}

func (uc *ProductoUseCase) checkCategoria(ctx context.Context, id string) error {
	c, err := uc.categoriaRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar categoría: %w", err)
	}
	if c == nil || !c.Status.IsActive() {
		return &domain.InvalidReferenceError{Campo: "categoria_id", ID: id}
	}
	return nil
}

func (uc *ProductoUseCase) checkColor(ctx context.Context, id string) error {
	c, err := uc.colorRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar color: %w", err)
	}
	if c == nil || !c.Status.IsActive() {
		return &domain.InvalidReferenceError{Campo: "color_id", ID: id}
	}
	return nil
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		CategoriaID:  p.CategoriaID,
		Talla:        p.Talla,
		ColorID:      p.ColorID,
		Precio:       p.Precio,
		CodigoBarras: p.CodigoBarras,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

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

// CategoriaUseCase CRUD del catálogo de categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create registra una categoría nueva.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		Descripcion: strings.TrimSpace(in.Descripcion),
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoriaResponse(c)
	return &out, nil
}

// GetByID obtiene una categoría por ID, o nil si no existe.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id string) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toCategoriaResponse(c)
	return &out, nil
}

// Update modifica los campos presentes en la petición.
func (uc *CategoriaUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		c.Nombre = nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoriaResponse(c)
	return &out, nil
}

// List lista categorías con filtros y paginación.
func (uc *CategoriaUseCase) List(ctx context.Context, f repository.CategoriaFilter, page dto.PageRequest) (*dto.CategoriaListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoriaResponse(c))
	}
	return &dto.CategoriaListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca la categoría como inactiva.
func (uc *CategoriaUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(c *entity.Categoria) { c.Disable() })
}

// Restore reactiva una categoría inactiva.
func (uc *CategoriaUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(c *entity.Categoria) { c.Restore() })
}

func (uc *CategoriaUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Categoria)) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	transition(c)
	c.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, c)
}

func toCategoriaResponse(c *entity.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

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

// ColorUseCase CRUD del catálogo de colores.
type ColorUseCase struct {
	repo repository.ColorRepository
}

// NewColorUseCase construye el caso de uso.
func NewColorUseCase(repo repository.ColorRepository) *ColorUseCase {
	return &ColorUseCase{repo: repo}
}

// Create registra un color nuevo.
func (uc *ColorUseCase) Create(ctx context.Context, in dto.CreateColorRequest) (*dto.ColorResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Color{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toColorResponse(c)
	return &out, nil
}

// GetByID obtiene un color por ID, o nil si no existe.
func (uc *ColorUseCase) GetByID(ctx context.Context, id string) (*dto.ColorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toColorResponse(c)
	return &out, nil
}

// Update modifica el nombre si viene en la petición.
func (uc *ColorUseCase) Update(ctx context.Context, id string, in dto.UpdateColorRequest) (*dto.ColorResponse, error) {
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
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toColorResponse(c)
	return &out, nil
}

// List lista colores con filtros y paginación.
func (uc *ColorUseCase) List(ctx context.Context, f repository.ColorFilter, page dto.PageRequest) (*dto.ColorListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toColorResponse(c))
	}
	return &dto.ColorListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el color como inactivo.
func (uc *ColorUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(c *entity.Color) { c.Disable() })
}

// Restore reactiva un color inactivo.
func (uc *ColorUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(c *entity.Color) { c.Restore() })
}

func (uc *ColorUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Color)) error {
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

func toColorResponse(c *entity.Color) dto.ColorResponse {
	return dto.ColorResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

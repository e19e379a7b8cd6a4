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

// SucursalUseCase CRUD de sucursales con borrado lógico.
type SucursalUseCase struct {
	repo repository.SucursalRepository
}

// NewSucursalUseCase construye el caso de uso.
func NewSucursalUseCase(repo repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{repo: repo}
}

// Create registra una sucursal nueva, activa por defecto.
func (uc *SucursalUseCase) Create(ctx context.Context, in dto.CreateSucursalRequest) (*dto.SucursalResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	s := &entity.Sucursal{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Direccion: strings.TrimSpace(in.Direccion),
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := toSucursalResponse(s)
	return &out, nil
}

// GetByID obtiene una sucursal por ID, o nil si no existe.
func (uc *SucursalUseCase) GetByID(ctx context.Context, id string) (*dto.SucursalResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	out := toSucursalResponse(s)
	return &out, nil
}

// Update modifica los campos presentes en la petición.
func (uc *SucursalUseCase) Update(ctx context.Context, id string, in dto.UpdateSucursalRequest) (*dto.SucursalResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		s.Nombre = nombre
	}
	if in.Direccion != nil {
		s.Direccion = strings.TrimSpace(*in.Direccion)
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := toSucursalResponse(s)
	return &out, nil
}

// List lista sucursales con filtros y paginación.
func (uc *SucursalUseCase) List(ctx context.Context, f repository.SucursalFilter, page dto.PageRequest) (*dto.SucursalListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.SucursalResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSucursalResponse(s))
	}
	return &dto.SucursalListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca la sucursal como inactiva.
func (uc *SucursalUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(s *entity.Sucursal) { s.Disable() })
}

// Restore reactiva una sucursal inactiva.
func (uc *SucursalUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(s *entity.Sucursal) { s.Restore() })
}

func (uc *SucursalUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Sucursal)) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	transition(s)
	s.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, s)
}

func toSucursalResponse(s *entity.Sucursal) dto.SucursalResponse {
	return dto.SucursalResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Direccion: s.Direccion,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

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

// ProveedorUseCase CRUD de proveedores con borrado lógico.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create registra un proveedor nuevo, activo por defecto.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Direccion: strings.TrimSpace(in.Direccion),
		Telefono:  strings.TrimSpace(in.Telefono),
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// GetByID obtiene un proveedor por ID, o nil si no existe.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id string) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// Update modifica los campos presentes en la petición.
func (uc *ProveedorUseCase) Update(ctx context.Context, id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
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
	if in.Direccion != nil {
		p.Direccion = strings.TrimSpace(*in.Direccion)
	}
	if in.Telefono != nil {
		p.Telefono = strings.TrimSpace(*in.Telefono)
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// List lista proveedores con filtros y paginación.
func (uc *ProveedorUseCase) List(ctx context.Context, f repository.ProveedorFilter, page dto.PageRequest) (*dto.ProveedorListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el proveedor como inactivo.
func (uc *ProveedorUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(p *entity.Proveedor) { p.Disable() })
}

// Restore reactiva un proveedor inactivo.
func (uc *ProveedorUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(p *entity.Proveedor) { p.Restore() })
}

func (uc *ProveedorUseCase) setStatus(ctx context.Context, id string, transition func(*entity.Proveedor)) error {
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

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Direccion: p.Direccion,
		Telefono:  p.Telefono,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

const minPasswordLen = 8

// UserUseCase administración de usuarios: alta con hash bcrypt, actualización
// y borrado lógico. La contraseña nunca sale de este paquete en plano.
type UserUseCase struct {
	repo         repository.UserRepository
	sucursalRepo repository.SucursalRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, sucursalRepo repository.SucursalRepository) *UserUseCase {
	return &UserUseCase{repo: repo, sucursalRepo: sucursalRepo}
}

// Create registra un usuario nuevo. El email debe ser único y la sucursal existir.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	if !validRole(in.Role) {
		return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, in.Role)
	}
	ok, err := uc.sucursalRepo.ExistsActive(ctx, in.SucursalID)
	if err != nil {
		return nil, fmt.Errorf("verificar sucursal: %w", err)
	}
	if !ok {
		return nil, &domain.InvalidReferenceError{Campo: "sucursal_id", ID: in.SucursalID}
	}

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generar hash: %w", err)
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		SucursalID:   in.SucursalID,
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := toUserResponse(u)
	return &out, nil
}

// GetByID obtiene un usuario por ID, o nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := toUserResponse(u)
	return &out, nil
}

// Update modifica los campos presentes en la petición. Si viene contraseña
// se rehashea; si viene email se valida unicidad contra otros usuarios.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		u.Name = name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
		if email != u.Email {
			existing, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != u.ID {
				return nil, domain.ErrEmailAlreadyExists
			}
			u.Email = email
		}
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("generar hash: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if in.SucursalID != nil {
		ok, err := uc.sucursalRepo.ExistsActive(ctx, *in.SucursalID)
		if err != nil {
			return nil, fmt.Errorf("verificar sucursal: %w", err)
		}
		if !ok {
			return nil, &domain.InvalidReferenceError{Campo: "sucursal_id", ID: *in.SucursalID}
		}
		u.SucursalID = *in.SucursalID
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, *in.Role)
		}
		u.Role = *in.Role
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := toUserResponse(u)
	return &out, nil
}

// List lista usuarios con filtros y paginación.
func (uc *UserUseCase) List(ctx context.Context, f repository.UserFilter, page dto.PageRequest) (*dto.UserListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// Disable marca el usuario como inactivo; deja de poder registrar movimientos.
func (uc *UserUseCase) Disable(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(u *entity.User) { u.Disable() })
}

// Restore reactiva un usuario inactivo.
func (uc *UserUseCase) Restore(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, func(u *entity.User) { u.Restore() })
}

func (uc *UserUseCase) setStatus(ctx context.Context, id string, transition func(*entity.User)) error {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	transition(u)
	u.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, u)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor:
		return true
	}
	return false
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		SucursalID: u.SucursalID,
		Role:       u.Role,
		Status:     string(u.Status),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

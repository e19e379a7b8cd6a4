package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdrojas/api-almacen/internal/application/dto"
	"github.com/jdrojas/api-almacen/internal/application/usecase"
	"github.com/jdrojas/api-almacen/internal/domain"
	"github.com/jdrojas/api-almacen/internal/domain/entity"
	"github.com/jdrojas/api-almacen/internal/domain/repository"
)

const sucursalCentro = "00000000-0000-0000-0000-0000000000c3"

type fakeUserRepo struct {
	users map[string]entity.User // clave: ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repository.UserFilter, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) ExistsActive(_ context.Context, id string) (bool, error) {
	u, ok := r.users[id]
	return ok && u.Status.IsActive(), nil
}

type fakeSucursalRepo struct{ activas map[string]bool }

func (r *fakeSucursalRepo) Create(_ context.Context, _ *entity.Sucursal) error { return nil }
func (r *fakeSucursalRepo) GetByID(_ context.Context, _ string) (*entity.Sucursal, error) {
	return nil, nil
}
func (r *fakeSucursalRepo) Update(_ context.Context, _ *entity.Sucursal) error { return nil }
func (r *fakeSucursalRepo) List(_ context.Context, _ repository.SucursalFilter, _, _ int) ([]*entity.Sucursal, int, error) {
	return nil, 0, nil
}
func (r *fakeSucursalRepo) ExistsActive(_ context.Context, id string) (bool, error) {
	return r.activas[id], nil
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, &fakeSucursalRepo{activas: map[string]bool{sucursalCentro: true}})
	return uc, repo
}

func createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:       "Juan Pérez",
		Email:      "Juan@Almacen.com",
		Password:   "secreto123",
		SucursalID: sucursalCentro,
		Role:       entity.RoleBodeguero,
	}
}

func TestUserCreate_HasheaPasswordYNormalizaEmail(t *testing.T) {
	uc, repo := newUserUC()

	out, err := uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "juan@almacen.com", out.Email, "el email se guarda en minúsculas")
	assert.Equal(t, "active", out.Status)

	stored := repo.users[out.ID]
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newUserUC()

	_, err := uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Name = "Otro Usuario"
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_Validaciones(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(req *dto.CreateUserRequest)
		wantErr error
	}{
		{"nombre vacío", func(r *dto.CreateUserRequest) { r.Name = "  " }, domain.ErrInvalidInput},
		{"email sin arroba", func(r *dto.CreateUserRequest) { r.Email = "juan.almacen.com" }, domain.ErrInvalidInput},
		{"contraseña corta", func(r *dto.CreateUserRequest) { r.Password = "corta" }, domain.ErrInvalidInput},
		{"rol desconocido", func(r *dto.CreateUserRequest) { r.Role = "gerente" }, domain.ErrInvalidInput},
		{"sucursal inexistente", func(r *dto.CreateUserRequest) { r.SucursalID = "otra" }, domain.ErrInvalidReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newUserUC()
			req := createRequest()
			tc.mutate(&req)
			_, err := uc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, repo.users)
		})
	}
}

func TestUserUpdate_RehasheaSoloSiVieneContraseña(t *testing.T) {
	uc, repo := newUserUC()
	out, err := uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	hashOriginal := repo.users[out.ID].PasswordHash

	nuevo := "Juan Actualizado"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateUserRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.users[out.ID].PasswordHash, "sin contraseña nueva el hash no cambia")

	pass := "otrosecreto9"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateUserRequest{Password: &pass})
	require.NoError(t, err)
	assert.NotEqual(t, hashOriginal, repo.users[out.ID].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[out.ID].PasswordHash), []byte(pass)))
}

func TestUserDisableRestore(t *testing.T) {
	uc, repo := newUserUC()
	out, err := uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Disable(context.Background(), out.ID))
	assert.Equal(t, entity.StatusInactive, repo.users[out.ID].Status)

	require.NoError(t, uc.Restore(context.Background(), out.ID))
	assert.Equal(t, entity.StatusActive, repo.users[out.ID].Status)

	assert.ErrorIs(t, uc.Disable(context.Background(), "no-existe"), domain.ErrNotFound)
}

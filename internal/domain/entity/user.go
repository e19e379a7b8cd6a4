package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema, adscrito a una sucursal.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en plano después de persistir
	SucursalID   string
	Role         string // admin, bodeguero, vendedor
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Disable marca el usuario como inactivo (borrado lógico).
func (u *User) Disable() { u.Status = StatusInactive }

// Restore reactiva un usuario inactivo.
func (u *User) Restore() { u.Status = StatusActive }

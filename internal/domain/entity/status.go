package entity

// Status estado administrativo de un registro (borrado lógico).
// Las transiciones se hacen con Disable/Restore en cada entidad, nunca asignando el campo directo.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsActive indica si el registro está activo.
func (s Status) IsActive() bool { return s == StatusActive }

// Valid indica si el valor es uno de los estados conocidos.
func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

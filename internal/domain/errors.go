package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidReference   = errors.New("referencia inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInsufficientLedger = errors.New("no existe registro de inventario para la salida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// InsufficientStockError lleva el contexto de una salida rechazada:
// el stock actual y la cantidad solicitada, para que el caller lo explique al usuario.
type InsufficientStockError struct {
	Actual     int
	Solicitado int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: stock actual %d, cantidad solicitada %d", e.Actual, e.Solicitado)
}

// Is hace que errors.Is(err, ErrInsufficientStock) funcione con el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvalidReferenceError identifica la referencia ofensiva (material, producto o sucursal).
type InvalidReferenceError struct {
	Campo string
	ID    string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s no existe o es inválido: %q", e.Campo, e.ID)
}

// Is hace que errors.Is(err, ErrInvalidReference) funcione con el error tipado.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

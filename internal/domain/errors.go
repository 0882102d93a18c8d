package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: validación (entrada del caller, nada persiste), conflicto
// (regla de negocio detectada al commit, rollback total) y StorageError
// (falla de infraestructura, rollback total, el caller decide reintentar).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Validación de CreateProduct / AdjustStock (en orden de chequeo).
	ErrMissingFields    = errors.New("faltan campos requeridos")
	ErrInvalidPrice     = errors.New("precio inválido")
	ErrNegativeQuantity = errors.New("cantidad negativa")

	// Conflictos de negocio al commit.
	ErrDuplicateSKU      = errors.New("SKU duplicado en la empresa")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrBundleCycle       = errors.New("el componente genera un ciclo en el bundle")
)

// StorageError envuelve una falla de infraestructura (timeout, conectividad).
// La operación que la produjo ya hizo rollback; nunca se reintenta en silencio.
type StorageError struct {
	Op  string // operación que falló, ej. "insert product"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError construye un StorageError con la operación que falló.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError indica si err es (o envuelve) un StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

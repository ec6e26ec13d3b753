package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateName     = errors.New("name already present")
	ErrDuplicateSKU      = errors.New("sku already present")
	ErrInsufficientStock = errors.New("not enough items in stock")
)

// Error asocia a un error de dominio el mensaje que verá el cliente.
// Unwrap devuelve Kind, así que errors.Is(err, domain.ErrNotFound) sigue funcionando.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf construye un *Error del tipo indicado con un mensaje formateado.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsDomainError indica si err es un resultado esperado del negocio (se responde como "failed")
// y no una falla interna.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrDuplicateSKU) ||
		errors.Is(err, ErrInsufficientStock)
}

package apperr

import (
	"errors"
	"fmt"
)

// Tipos de error que cruzan la frontera repositorio -> handler.
// El handler los traduce a códigos HTTP (422, 404, 409).
type Kind int

const (
	Validation Kind = iota // campo faltante, mal formado o fuera de rango
	NotFound               // id referenciado no existe
	Conflict               // violación de índice único (código repetido, línea duplicada)
	Referential            // borrado bloqueado por dependientes
)

type Error struct {
	Kind    Kind
	Message string
	// Campos con su mensaje (solo para errores de validación)
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation crea un error de validación con el mapa campo -> mensaje
func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: Validation, Message: "datos inválidos", Fields: fields}
}

// NewValidationField crea un error de validación sobre un único campo
func NewValidationField(field, message string) *Error {
	return NewValidation(map[string]string{field: message})
}

func NewNotFound(entity string, id uint) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf("%s %d no encontrado", entity, id)}
}

func NewNotFoundMsg(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

func NewReferential(message string) *Error {
	return &Error{Kind: Referential, Message: message}
}

// As extrae el *Error de una cadena de errores, si lo hay
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind indica si err es un *Error del tipo dado
func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}

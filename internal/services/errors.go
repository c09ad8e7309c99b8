package services

import (
	"errors"
	"fmt"
)

const (
	MsgEspecialidadNoEncontrada = "Especialidad no encontrada"
	MsgTipoNoEncontrado         = "Tipo de medicamento no encontrado"
	MsgMedicamentoNoEncontrado  = "Medicamento no encontrado"
)

var ErrNotFound = errors.New("not found")

// NotFoundError carries the user-facing message for a missing primary key.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError is a client error: bad input, a dangling foreign key, or
// a delete blocked by dependent rows.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func notFound(msg string) error { return &NotFoundError{Message: msg} }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrCompanyNotFound       = errors.New("empresa no encontrada")
	ErrAccessNotFound        = errors.New("access not found for the specified user and company")
	ErrEmailInUse            = errors.New("el email ya está en uso")
	ErrDocumentInUse         = errors.New("el documento ya está registrado")
	ErrInvalidPasswordLength = errors.New("password must be between 6 and 20 characters long")
)

// ValidationError señala un invariante de entidad violado. Field indica el
// campo de la primera regla que falló.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation informa si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

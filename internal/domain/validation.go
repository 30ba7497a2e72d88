package domain

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequireNonEmpty valida que el campo no esté vacío.
func RequireNonEmpty(value, field string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " es un campo obligatorio"}
	}
	return nil
}

// RequireExactLength valida que el valor tenga exactamente length caracteres.
func RequireExactLength(value string, length int, field string) *ValidationError {
	if len(value) != length {
		return &ValidationError{Field: field, Message: fmt.Sprintf("debe tener exactamente %d caracteres", length)}
	}
	return nil
}

// RequireEmail valida la forma del email contra el patrón estándar.
func RequireEmail(value string) *ValidationError {
	if !emailRegex.MatchString(value) {
		return &ValidationError{Field: "email", Message: "email inválido"}
	}
	return nil
}

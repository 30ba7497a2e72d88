// Package encryption implementa la capacidad PasswordHasher con bcrypt.
package encryption

import (
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

var _ repository.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashing unidireccional con salt vía bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. Con cost fuera de rango usa el
// default de bcrypt (10).
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash genera el hash del password en texto plano.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare informa si plaintext corresponde al hash almacenado.
func (h *BcryptHasher) Compare(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

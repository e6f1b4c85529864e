package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

// BcryptHasher salts and hashes passwords with bcrypt. Plaintext is never
// stored anywhere.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return entity.ErrInvalidCredentials
	}
	return nil
}

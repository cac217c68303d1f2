package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 12

// NewID returns a fresh entity id. Ids are opaque strings everywhere in the
// data model, so the concrete format only has to be unique.
func NewID() string {
	return uuid.NewString()
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost used in production
const BcryptCost = 12

// Hasher hashes and checks passwords with a fixed bcrypt cost
type Hasher struct {
	Cost int
}

// NewHasher returns a Hasher; a cost outside bcrypt's range falls back to BcryptCost
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	return Hasher{Cost: cost}
}

// Hash returns the bcrypt hash of password
func (h Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Check reports whether password matches hashedPassword
func (h Hasher) Check(hashedPassword, password string) bool {
	return CheckPassword(hashedPassword, password)
}

// HashPassword hashes with BcryptCost
func HashPassword(password string) (string, error) {
	return NewHasher(BcryptCost).Hash(password)
}

// CheckPassword compares a bcrypt hash with a plain password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

package service

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements [PasswordHasher] with bcrypt. Verification is an
// exact match on the supplied secret: no normalization, no case folding.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] using the given bcrypt cost.
// A cost of 0 selects the library default.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *bcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

package security

import (
	"zoracom_vms/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher derives the initial onboarding credential. The workflow
// engine only stores the digest; verification happens in the identity
// provider, outside this service.
type BcryptHasher struct {
	cost int
}

var _ interfaces.IHasher = (*BcryptHasher)(nil)

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

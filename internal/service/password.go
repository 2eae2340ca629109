package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts how account passwords are stored and compared.
// Plain keeps the original wire contract, where registration and login echo
// the stored password back to the caller. Bcrypt is available for
// deployments that accept hashed passwords in those payloads instead.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(stored, supplied string) bool
}

type Plain struct{}

func (Plain) Hash(password string) (string, error) { return password, nil }

func (Plain) Compare(stored, supplied string) bool { return stored == supplied }

type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (Bcrypt) Compare(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

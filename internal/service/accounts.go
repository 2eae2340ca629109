package service

import (
	"errors"
	"fmt"

	"chirp/internal/models"
	"chirp/internal/store"
)

const minPasswordLength = 5

type AccountService struct {
	store  store.Store
	hasher PasswordHasher
}

func NewAccountService(st store.Store, hasher PasswordHasher) *AccountService {
	if hasher == nil {
		hasher = Plain{}
	}
	return &AccountService{store: st, hasher: hasher}
}

// Register creates a new account. The password policy is checked before any
// storage access, so a short password reports the policy failure even when
// the username is also taken. Uniqueness is decided by the store's
// constraint on insert, never by a prior read.
func (s *AccountService) Register(account models.Account) (models.Account, error) {
	if len(account.Password) < minPasswordLength {
		return models.Account{}, ErrMinPasswordLength
	}

	stored, err := s.hasher.Hash(account.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}
	account.Password = stored

	if err := s.store.CreateAccount(&account); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Account{}, ErrDuplicateUser
		}
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Login returns the full stored record, password included. Unknown username
// and credential mismatch collapse into the same error so callers cannot
// probe which usernames exist.
func (s *AccountService) Login(username, password string) (models.Account, error) {
	account, err := s.store.GetAccountByUsername(username)
	if err != nil {
		return models.Account{}, ErrLogin
	}
	if !s.hasher.Compare(account.Password, password) {
		return models.Account{}, ErrLogin
	}
	return *account, nil
}

func (s *AccountService) GetByID(id int) (models.Account, error) {
	account, err := s.store.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, fmt.Errorf("get account %d: %w", id, err)
	}
	return *account, nil
}

package sqlstore

import (
	"database/sql"
	"errors"

	"chirp/internal/models"
	"chirp/internal/store"
)

func (s *SQLStore) CreateAccount(account *models.Account) error {
	query := s.rebind("INSERT INTO accounts (username, password) VALUES (?, ?) RETURNING id")
	err := s.db.QueryRow(query, account.Username, account.Password).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *SQLStore) GetAccountByID(id int) (*models.Account, error) {
	var account models.Account
	query := s.rebind("SELECT id, username, password FROM accounts WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&account.ID, &account.Username, &account.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *SQLStore) GetAccountByUsername(username string) (*models.Account, error) {
	var account models.Account
	query := s.rebind("SELECT id, username, password FROM accounts WHERE username = ?")
	err := s.db.QueryRow(query, username).Scan(&account.ID, &account.Username, &account.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

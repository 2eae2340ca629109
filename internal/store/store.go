package store

import (
	"errors"

	"chirp/internal/models"
)

// Sentinel errors returned by Store implementations. Callers branch on these
// with errors.Is; anything else is treated as a storage failure.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Store interface {
	// Account operations
	CreateAccount(account *models.Account) error
	GetAccountByID(id int) (*models.Account, error)
	GetAccountByUsername(username string) (*models.Account, error)

	// Message operations
	CreateMessage(message *models.Message) error
	GetMessageByID(id int) (*models.Message, error)
	GetAllMessages() ([]models.Message, error)
	GetMessagesByAccountID(accountID int) ([]models.Message, error)
	UpdateMessageText(id int, text string) error
	DeleteMessage(id int) error
}

package service

import (
	"errors"
	"fmt"
	"time"

	"chirp/internal/models"
	"chirp/internal/store"
)

// Message text must be non-empty and strictly shorter than 255 bytes, so 254
// is the longest accepted text. The exclusive upper bound is part of the API
// contract.
const maxMessageLength = 255

func validTextLength(text string) bool {
	return len(text) > 0 && len(text) < maxMessageLength
}

type MessageService struct {
	store store.Store
}

func NewMessageService(st store.Store) *MessageService {
	return &MessageService{store: st}
}

// Create checks the author exists before validating the text, matching the
// documented precondition order. TimePosted is stamped when the caller
// leaves it zero and otherwise taken as supplied.
func (s *MessageService) Create(message models.Message) (models.Message, error) {
	if _, err := s.store.GetAccountByID(message.PostedBy); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, ErrAccountNotFound
		}
		return models.Message{}, fmt.Errorf("check author %d: %w", message.PostedBy, err)
	}

	if !validTextLength(message.MessageText) {
		return models.Message{}, ErrMessageLength
	}

	if message.TimePosted == 0 {
		message.TimePosted = time.Now().UnixMilli()
	}

	if err := s.store.CreateMessage(&message); err != nil {
		return models.Message{}, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *MessageService) GetAll() ([]models.Message, error) {
	messages, err := s.store.GetAllMessages()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *MessageService) GetByID(id int) (models.Message, error) {
	message, err := s.store.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, fmt.Errorf("get message %d: %w", id, err)
	}
	return *message, nil
}

// Update replaces the message text only. PostedBy and TimePosted are
// immutable after creation, so a sparse patch body cannot blank them out and
// the author check done at creation remains valid.
func (s *MessageService) Update(id int, text string) (models.Message, error) {
	message, err := s.store.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, fmt.Errorf("get message %d: %w", id, err)
	}

	if !validTextLength(text) {
		return models.Message{}, ErrMessageLength
	}

	if err := s.store.UpdateMessageText(id, text); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, fmt.Errorf("update message %d: %w", id, err)
	}

	message.MessageText = text
	return *message, nil
}

func (s *MessageService) Delete(id int) error {
	if err := s.store.DeleteMessage(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	return nil
}

func (s *MessageService) GetByAccountID(accountID int) ([]models.Message, error) {
	if _, err := s.store.GetAccountByID(accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("check account %d: %w", accountID, err)
	}

	messages, err := s.store.GetMessagesByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("list messages for account %d: %w", accountID, err)
	}
	return messages, nil
}

package sqlstore

import (
	"database/sql"
	"errors"

	"chirp/internal/models"
	"chirp/internal/store"
)

func (s *SQLStore) CreateMessage(message *models.Message) error {
	query := s.rebind("INSERT INTO messages (posted_by, message_text, time_posted) VALUES (?, ?, ?) RETURNING id")
	return s.db.QueryRow(query, message.PostedBy, message.MessageText, message.TimePosted).Scan(&message.ID)
}

func (s *SQLStore) GetMessageByID(id int) (*models.Message, error) {
	var message models.Message
	query := s.rebind("SELECT id, posted_by, message_text, time_posted FROM messages WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&message.ID, &message.PostedBy, &message.MessageText, &message.TimePosted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (s *SQLStore) GetAllMessages() ([]models.Message, error) {
	query := "SELECT id, posted_by, message_text, time_posted FROM messages ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (s *SQLStore) GetMessagesByAccountID(accountID int) ([]models.Message, error) {
	query := s.rebind("SELECT id, posted_by, message_text, time_posted FROM messages WHERE posted_by = ? ORDER BY id")
	rows, err := s.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (s *SQLStore) UpdateMessageText(id int, text string) error {
	query := s.rebind("UPDATE messages SET message_text = ? WHERE id = ?")
	res, err := s.db.Exec(query, text, id)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (s *SQLStore) DeleteMessage(id int) error {
	query := s.rebind("DELETE FROM messages WHERE id = ?")
	res, err := s.db.Exec(query, id)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

// scanMessages always returns a non-nil slice: "no messages" is a valid
// result, not an error, and must serialize as [] rather than null.
func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.MessageText, &m.TimePosted); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

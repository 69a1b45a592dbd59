package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"brandstudio-backend/internal/models"
)

func (d *DatabaseClient) CreateMessage(message *models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	err := d.db.QueryRow(`
		INSERT INTO chat_messages (id, session_id, message, sender, message_type, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, message.ID, message.SessionID, message.Message, message.Sender,
		message.MessageType, message.ImageURL).Scan(&message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListMessages fetches one chat thread ordered by creation time descending.
// Callers reverse the slice before display so the conversation replays
// chronologically.
func (d *DatabaseClient) ListMessages(chatID string) ([]models.ChatMessage, error) {
	rows, err := d.db.Query(`
		SELECT id, session_id, message, sender, message_type, image_url, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at DESC
	`, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var message models.ChatMessage
		err := rows.Scan(
			&message.ID, &message.SessionID, &message.Message, &message.Sender,
			&message.MessageType, &message.ImageURL, &message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

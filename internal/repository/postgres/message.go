package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	m.ID = uuid.NewString()
	m.Timestamp = time.Now().UTC()
	m.Read = false

	query := `INSERT INTO messages (id, sender_id, recipient_id, request_id, content, timestamp, read)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	logger.DatabaseCall(ctx, "INSERT", "messages", "requestID", m.RequestID, "senderID", m.SenderID)
	_, err := r.db.ExecContext(ctx, query, m.ID, m.SenderID, m.RecipientID, m.RequestID, m.Content, m.Timestamp, m.Read)
	logger.DatabaseResult(ctx, "INSERT", 1, err)
	return err
}

func (r *messageRepository) ListByRequest(ctx context.Context, requestID string, limit int) ([]domain.Message, error) {
	if !validID(requestID) {
		return []domain.Message{}, nil
	}
	query := `SELECT id, sender_id, recipient_id, request_id, content, timestamp, read
	          FROM messages WHERE request_id = $1 ORDER BY timestamp ASC, id ASC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, requestID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.RequestID, &m.Content, &m.Timestamp, &m.Read); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
)

type cardMessageRepositoryImpl struct {
	db *database.DB
}

func NewCardMessageRepository(db *database.DB) cardmessage.CardMessageRepository {
	return &cardMessageRepositoryImpl{db: db}
}

// ListCreatedBetween implements cardmessage.CardMessageRepository.
func (r *cardMessageRepositoryImpl) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]cardmessage.CardMessage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.card_message, m.user_id, m.created_at, u.name, u.role
		FROM card_messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.created_at >= $1 AND m.created_at < $2
		ORDER BY m.created_at DESC, m.id DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query card messages: %w", err)
	}
	defer rows.Close()

	messages := []cardmessage.CardMessage{}
	for rows.Next() {
		var msg cardmessage.CardMessage
		sender := &user.User{}
		if err := rows.Scan(&msg.ID, &msg.CardMessage, &msg.UserID, &msg.CreatedAt, &sender.Name, &sender.Role); err != nil {
			return nil, fmt.Errorf("failed to scan card message: %w", err)
		}
		sender.ID = msg.UserID
		msg.User = sender
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card messages: %w", err)
	}
	return messages, nil
}

// Create implements cardmessage.CardMessageRepository.
func (r *cardMessageRepositoryImpl) Create(ctx context.Context, msg cardmessage.CardMessage) (cardmessage.CardMessage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO card_messages (card_message, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := q.QueryRow(ctx, query, msg.CardMessage, msg.UserID).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return cardmessage.CardMessage{}, fmt.Errorf("failed to create card message: %w", err)
	}
	return msg, nil
}

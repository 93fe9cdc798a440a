package cardmessage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
	"github.com/jackc/pgx/v5"
)

const DisplayLayout = "2006/01/02 15:04"

type CardMessageServiceImpl struct {
	cardmessage.CardMessageRepository
	userRepo user.UserRepository
}

func NewCardMessageService(repo cardmessage.CardMessageRepository, userRepo user.UserRepository) cardmessage.CardMessageService {
	return &CardMessageServiceImpl{
		CardMessageRepository: repo,
		userRepo:              userRepo,
	}
}

// ListForDay implements cardmessage.CardMessageService.
func (s *CardMessageServiceImpl) ListForDay(ctx context.Context, day time.Time) ([]cardmessage.MessageResponse, error) {
	from, to := dayfilter.Bounds(day)
	messages, err := s.CardMessageRepository.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list card messages: %w", err)
	}

	messages = dayfilter.FilterByDay(messages, day, func(m cardmessage.CardMessage) time.Time { return m.CreatedAt })

	resp := make([]cardmessage.MessageResponse, 0, len(messages))
	for _, m := range messages {
		var userName string
		if m.User != nil {
			userName = m.User.Name
		}
		resp = append(resp, cardmessage.MessageResponse{
			ID:          m.ID,
			CardMessage: m.CardMessage,
			UserID:      m.UserID,
			UserName:    userName,
			CreatedAt:   m.CreatedAt.In(time.Local).Format(DisplayLayout),
		})
	}
	return resp, nil
}

// Ingest implements cardmessage.CardMessageService.
func (s *CardMessageServiceImpl) Ingest(ctx context.Context, senderID int64, req cardmessage.IngestRequest) (cardmessage.CardMessage, error) {
	payload := string(req.CardMessage)

	// The workflow may post the card as a JSON string instead of an object.
	var quoted string
	if err := json.Unmarshal(req.CardMessage, &quoted); err == nil {
		payload = quoted
	}

	if _, err := cardmessage.ParseEnvelope(payload); err != nil {
		return cardmessage.CardMessage{}, err
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cardmessage.CardMessage{}, user.ErrUserNotFound
		}
		return cardmessage.CardMessage{}, fmt.Errorf("failed to get sender: %w", err)
	}
	if !sender.CanReport {
		return cardmessage.CardMessage{}, cardmessage.ErrSenderNotAuthorized
	}

	created, err := s.CardMessageRepository.Create(ctx, cardmessage.CardMessage{
		CardMessage: payload,
		UserID:      sender.ID,
	})
	if err != nil {
		return cardmessage.CardMessage{}, fmt.Errorf("failed to create card message: %w", err)
	}
	created.User = &sender
	return created, nil
}

package cardmessage

import (
	"context"
	"time"
)

type CardMessageRepository interface {
	// ListCreatedBetween returns messages with their sender, newest first
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]CardMessage, error)
	Create(ctx context.Context, msg CardMessage) (CardMessage, error)
}

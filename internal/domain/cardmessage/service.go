package cardmessage

import (
	"context"
	"time"
)

type CardMessageService interface {
	ListForDay(ctx context.Context, day time.Time) ([]MessageResponse, error)
	Ingest(ctx context.Context, senderID int64, req IngestRequest) (CardMessage, error)
}

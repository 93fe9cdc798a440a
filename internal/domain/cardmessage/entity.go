package cardmessage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
)

// CardMessage is an adaptive card posted by an authorized sender through a
// Teams workflow. CardMessage holds the raw JSON payload.
type CardMessage struct {
	ID          int64      `json:"id"`
	CardMessage string     `json:"card_message"`
	UserID      int64      `json:"user_id"`
	User        *user.User `json:"user,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Envelope is the message shape handed to the card renderer.
type Envelope struct {
	Attachments []Attachment `json:"attachments"`
}

type Attachment struct {
	ContentType string          `json:"contentType,omitempty"`
	Content     json.RawMessage `json:"content"`
}

// ParseEnvelope checks that payload is a message with at least one attachment
// carrying a JSON object as content.
func ParseEnvelope(payload string) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrInvalidCardPayload, err)
	}
	if len(env.Attachments) == 0 {
		return Envelope{}, fmt.Errorf("%w: no attachments", ErrInvalidCardPayload)
	}
	for i, a := range env.Attachments {
		var obj map[string]json.RawMessage
		if len(a.Content) == 0 || json.Unmarshal(a.Content, &obj) != nil {
			return Envelope{}, fmt.Errorf("%w: attachment %d content is not an object", ErrInvalidCardPayload, i)
		}
	}
	return env, nil
}

// MessageResponse is a card message with a display timestamp.
type MessageResponse struct {
	ID          int64  `json:"id"`
	CardMessage string `json:"card_message"`
	UserID      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	CreatedAt   string `json:"created_at"`
}

type IngestRequest struct {
	CardMessage json.RawMessage `json:"card_message"`
}

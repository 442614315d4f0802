package store

import (
	"encoding/json"
	"time"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type Chat struct {
	ID        string    `json:"id"` // Using UUID for external ID
	CreatedAt time.Time `json:"created_at"`
}

// Message is a stored transcript entry. Payload is the rendered message as
// JSON; the store does not interpret it.
type Message struct {
	ID               string          `json:"id"`
	ChatID           string          `json:"chat_id"`
	Sender           string          `json:"sender"` // "user" or "assistant"
	Payload          json.RawMessage `json:"payload"`
	Timestamp        time.Time       `json:"timestamp"`
	NegativeFeedback bool            `json:"negative_feedback"`
}

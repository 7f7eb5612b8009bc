package websockets

import (
	"time"

	"github.com/chris/nutstash-wallet/pkg/models"
)

// MessageType defines the type of a websocket message.
type MessageType string

const (
	// MessageTypeToast carries a transient user-facing notification.
	MessageTypeToast MessageType = "toast"
	// MessageTypeNoticeUpdated is sent when the persisted notice changes.
	MessageTypeNoticeUpdated MessageType = "noticeUpdated"
	// MessageTypeMintsUpdated is sent after the mint registry is written.
	MessageTypeMintsUpdated MessageType = "mintsUpdated"
)

// Message represents a generic websocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ToastPayload is the payload for a toast message.
type ToastPayload struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NoticePayload is the payload for a noticeUpdated message.
type NoticePayload struct {
	Message string `json:"message"`
}

// MintsPayload is the payload for a mintsUpdated message.
type MintsPayload struct {
	Mints []models.Mint `json:"mints"`
}

// NewMintsUpdated builds the message broadcast after a registry write.
func NewMintsUpdated(mints []models.Mint) Message {
	return Message{Type: MessageTypeMintsUpdated, Payload: MintsPayload{Mints: mints}}
}

// NewNoticeUpdated builds the message broadcast after the notice changes.
func NewNoticeUpdated(message string) Message {
	return Message{Type: MessageTypeNoticeUpdated, Payload: NoticePayload{Message: message}}
}

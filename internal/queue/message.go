package queue

import (
	"context"
	"encoding/json"
)

// Client publishes recommendation events for downstream consumers
// (notifications, analytics). Publishing is best-effort; the engine never
// fails a request over it.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// Message is the payload sent to downstream queue consumers when a
// recommendation has been recorded.
type Message struct {
	RecommendationID string `json:"recommendationId"`
	UserID           string `json:"userId"`
	RoutineName      string `json:"routineName"`
	RequestID        string `json:"requestId"`
	EnqueuedAt       string `json:"enqueuedAt"`
	Version          int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

package domain

import "time"

type PushStatus string

const (
	PushStatusSent   PushStatus = "sent"
	PushStatusFailed PushStatus = "failed"
)

// SentPushNotification records one push delivery attempt.
type SentPushNotification struct {
	ID        int32             `json:"id"`
	UserID    int32             `json:"user_id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	Status    PushStatus        `json:"status"`
	Response  string            `json:"response"`
	CreatedAt time.Time         `json:"created_at"`
}

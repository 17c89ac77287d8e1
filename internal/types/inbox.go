package types

import "time"

type InboxMessage struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	ReceivedAt time.Time `json:"received_at"`
}

package subscription

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	EmailOptIn   bool       `json:"email_opt_in"`
	SmsOptIn     bool       `json:"sms_opt_in"`
	IsSubscribed bool       `json:"is_subscribed"`
	LastSentAt   *time.Time `json:"last_sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type SubscribeRequest struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EmailOptIn bool   `json:"emailOptIn"`
	SmsOptIn   bool   `json:"smsOptIn"`
}

package models

// BookingConfirmedEvent is published after a successful submission so the
// notification pipeline can act on it (confirmation email etc.).
type BookingConfirmedEvent struct {
	UserID         int64  `json:"user_id"`
	EventID        int64  `json:"event_id"`
	TierID         int64  `json:"tier_id"`
	Quantity       int    `json:"quantity"`
	AmountCents    int64  `json:"amount_cents"`
	Status         string `json:"status"`
	IdempotencyKey string `json:"idempotency_key"`
}

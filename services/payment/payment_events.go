package payment

import "github.com/shopspring/decimal"

// Event names and payloads as the upstream Payment module publishes them.
// The module itself lives elsewhere; this is just its outbound contract.
const (
	EventCreated       = "payment.created"
	EventStatusUpdated = "payment.status.updated"
)

const (
	StatusConfirmed = "confirmed"
	StatusError     = "error"
)

type CreatedEvent struct {
	PaymentID   string          `json:"payment_id"`
	UserID      int64           `json:"user_id"`
	PaymentType string          `json:"payment_type"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

type StatusUpdatedEvent struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

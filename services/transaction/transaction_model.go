package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusError     Status = "ERROR"
)

// Terminal reports whether no handler may move the transaction any further.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusError:
		return true
	}
	return false
}

type SubStatus string

const (
	SubStatusDone                       SubStatus = "DONE"
	SubStatusAwaitsPaymentGatewayUpdate SubStatus = "AWAITS_PAYMENT_GATEWAY_UPDATE"
	SubStatusPaymentReceived            SubStatus = "PAYMENT_RECEIVED"
	SubStatusPaymentError               SubStatus = "PAYMENT_ERROR"
)

type Type string

const (
	TypePayment             Type = "PAYMENT"
	TypeSubscriptionPayment Type = "SUBSCRIPTION_PAYMENT"
	TypeTransfer            Type = "TRANSFER"
)

// Transaction is the append-only, multi-state financial record. Amounts are
// fixed-point with two fractional digits; higher-precision input is rounded
// half-up before persistence. Once COMPLETED or ERROR it never changes again.
type Transaction struct {
	ID                uuid.UUID       `json:"id"`
	UserID            int64           `json:"user_id"`
	PaymentID         string          `json:"payment_id"`
	Type              Type            `json:"type"`
	Status            Status          `json:"status"`
	SubStatus         SubStatus       `json:"sub_status"`
	DebitTotal        decimal.Decimal `json:"debit_total"`
	DebitType         string          `json:"debit_type"`
	DebitSubtype      string          `json:"debit_subtype"`
	DebitCurrency     string          `json:"debit_currency"`
	CreditTotal       decimal.Decimal `json:"credit_total"`
	CreditType        string          `json:"credit_type"`
	CreditSubtype     string          `json:"credit_subtype"`
	CreditCurrency    string          `json:"credit_currency"`
	DebitReferenceID  string          `json:"debit_reference_id"`
	CreditReferenceID string          `json:"credit_reference_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

const AggregateType = "transaction"

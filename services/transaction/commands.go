package transaction

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CommandCreate        = "transaction.create"
	CommandCreatePayment = "transaction.payment.create"
	CommandConfirm       = "transaction.payment.confirm"
	CommandSetError      = "transaction.payment.error"
	CommandUpdateStatus  = "transaction.status.update"

	EventCreated   = "transaction.created"
	EventCompleted = "transaction.completed"
	EventFailed    = "transaction.failed"
)

// Payment attribute values as the upstream Payment module publishes them.
const (
	PaymentTypeOneTime   = "one-time"
	PaymentTypeRecurring = "recurring"

	PaymentStatusConfirmed = "confirmed"
)

// CreateNewTransactionCommand builds a transaction in PENDING with the
// caller-supplied substatus, or DONE when none is given.
type CreateNewTransactionCommand struct {
	UserID         int64           `json:"user_id" validate:"required,gt=0"`
	PaymentID      string          `json:"payment_id"`
	Type           Type            `json:"type" validate:"required"`
	SubStatus      SubStatus       `json:"sub_status"`
	DebitTotal     decimal.Decimal `json:"debit_total"`
	DebitType      string          `json:"debit_type"`
	DebitSubtype   string          `json:"debit_subtype"`
	DebitCurrency  string          `json:"debit_currency"`
	CreditTotal    decimal.Decimal `json:"credit_total"`
	CreditType     string          `json:"credit_type"`
	CreditSubtype  string          `json:"credit_subtype"`
	CreditCurrency string          `json:"credit_currency"`
}

func (c *CreateNewTransactionCommand) CommandName() string    { return CommandCreate }
func (c *CreateNewTransactionCommand) CommandVersion() string { return "v1" }

// CreatePaymentTransactionCommand records a payment the upstream module
// reported with no linked transaction yet.
type CreatePaymentTransactionCommand struct {
	UserID        int64           `json:"user_id" validate:"required,gt=0"`
	PaymentID     string          `json:"payment_id" validate:"required"`
	PaymentType   string          `json:"payment_type" validate:"required"`
	PaymentStatus string          `json:"payment_status" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" validate:"required"`
}

func (c *CreatePaymentTransactionCommand) CommandName() string    { return CommandCreatePayment }
func (c *CreatePaymentTransactionCommand) CommandVersion() string { return "v1" }

type ConfirmPaymentTransactionCommand struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

func (c *ConfirmPaymentTransactionCommand) CommandName() string    { return CommandConfirm }
func (c *ConfirmPaymentTransactionCommand) CommandVersion() string { return "v1" }

type SetPaymentTransactionErrorCommand struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

func (c *SetPaymentTransactionErrorCommand) CommandName() string    { return CommandSetError }
func (c *SetPaymentTransactionErrorCommand) CommandVersion() string { return "v1" }

// UpdateTransactionStatusCommand is the generic setter other flows use.
type UpdateTransactionStatusCommand struct {
	TransactionID uuid.UUID `json:"transaction_id" validate:"required"`
	Status        Status    `json:"status" validate:"required"`
	SubStatus     SubStatus `json:"sub_status" validate:"required"`
}

func (c *UpdateTransactionStatusCommand) CommandName() string    { return CommandUpdateStatus }
func (c *UpdateTransactionStatusCommand) CommandVersion() string { return "v1" }

package transaction

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	// GetByPaymentID finds the transaction linked to an upstream payment.
	// ErrTransactionNotFound when the payment has no transaction yet.
	GetByPaymentID(ctx context.Context, paymentID string) (*Transaction, error)
	Create(ctx context.Context, txn *Transaction) error
	UpdateStatus(ctx context.Context, txn *Transaction) error
}

// TxStores is the slice of the transaction-scoped store bundle these
// handlers need.
type TxStores interface {
	Transactions() Repository
}

package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	db "github.com/CrestPay/CrestPay-Backend/db/sqlc"
)

type SQLRepository struct {
	q *db.Queries
}

func NewSQLRepository(q *db.Queries) *SQLRepository {
	return &SQLRepository{q: q}
}

func (r *SQLRepository) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := r.q.GetTransaction(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	} else if err != nil {
		return nil, err
	}
	return fromTransactionRow(row)
}

func (r *SQLRepository) GetByPaymentID(ctx context.Context, paymentID string) (*Transaction, error) {
	row, err := r.q.GetTransactionByPaymentID(ctx, nullString(paymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	} else if err != nil {
		return nil, err
	}
	return fromTransactionRow(row)
}

func (r *SQLRepository) Create(ctx context.Context, txn *Transaction) error {
	row, err := r.q.CreateTransaction(ctx, db.CreateTransactionParams{
		ID:                txn.ID,
		UserID:            txn.UserID,
		PaymentID:         nullString(txn.PaymentID),
		Type:              string(txn.Type),
		Status:            string(txn.Status),
		SubStatus:         string(txn.SubStatus),
		DebitTotal:        txn.DebitTotal.StringFixed(2),
		DebitType:         nullString(txn.DebitType),
		DebitSubtype:      nullString(txn.DebitSubtype),
		DebitCurrency:     nullString(txn.DebitCurrency),
		CreditTotal:       txn.CreditTotal.StringFixed(2),
		CreditType:        nullString(txn.CreditType),
		CreditSubtype:     nullString(txn.CreditSubtype),
		CreditCurrency:    nullString(txn.CreditCurrency),
		DebitReferenceID:  nullString(txn.DebitReferenceID),
		CreditReferenceID: nullString(txn.CreditReferenceID),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == db.DuplicateEntry {
			return ErrTransactionExists
		}
		return err
	}
	txn.CreatedAt = row.CreatedAt
	txn.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, txn *Transaction) error {
	_, err := r.q.UpdateTransactionStatus(ctx, db.UpdateTransactionStatusParams{
		ID:        txn.ID,
		Status:    string(txn.Status),
		SubStatus: string(txn.SubStatus),
		UpdatedAt: txn.UpdatedAt,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTransactionNotFound
	}
	return err
}

func fromTransactionRow(row db.Transaction) (*Transaction, error) {
	debit, err := decimal.NewFromString(row.DebitTotal)
	if err != nil {
		return nil, fmt.Errorf("parse debit_total %q: %w", row.DebitTotal, err)
	}
	credit, err := decimal.NewFromString(row.CreditTotal)
	if err != nil {
		return nil, fmt.Errorf("parse credit_total %q: %w", row.CreditTotal, err)
	}
	return &Transaction{
		ID:                row.ID,
		UserID:            row.UserID,
		PaymentID:         row.PaymentID.String,
		Type:              Type(row.Type),
		Status:            Status(row.Status),
		SubStatus:         SubStatus(row.SubStatus),
		DebitTotal:        debit,
		DebitType:         row.DebitType.String,
		DebitSubtype:      row.DebitSubtype.String,
		DebitCurrency:     row.DebitCurrency.String,
		CreditTotal:       credit,
		CreditType:        row.CreditType.String,
		CreditSubtype:     row.CreditSubtype.String,
		CreditCurrency:    row.CreditCurrency.String,
		DebitReferenceID:  row.DebitReferenceID.String,
		CreditReferenceID: row.CreditReferenceID.String,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	db "github.com/CrestPay/CrestPay-Backend/db/sqlc"
)

// SQLRepository adapts the sqlc queries to the wallet repository. A bare
// *Queries reads against the base connection (the hook's existence check);
// inside a unit of work it is the transaction-bound Queries handed out by
// the store.
type SQLRepository struct {
	q *db.Queries
}

func NewSQLRepository(q *db.Queries) *SQLRepository {
	return &SQLRepository{q: q}
}

func (r *SQLRepository) GetByUserAndCurrency(ctx context.Context, userID int64, currency string) (*Asset, error) {
	row, err := r.q.GetWalletAssetByUserAndCurrency(ctx, db.GetWalletAssetByUserAndCurrencyParams{
		UserID:   userID,
		Currency: currency,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	} else if err != nil {
		return nil, err
	}
	return fromRow(row)
}

func (r *SQLRepository) Create(ctx context.Context, asset *Asset) error {
	row, err := r.q.CreateWalletAsset(ctx, db.CreateWalletAssetParams{
		ID:          asset.ID,
		UserID:      asset.UserID,
		Currency:    asset.Currency,
		TotalAmount: asset.TotalAmount.StringFixed(2),
		HoldAmount:  asset.HoldAmount.StringFixed(2),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == db.DuplicateEntry {
			return ErrAssetExists
		}
		return err
	}
	asset.CreatedAt = row.CreatedAt
	asset.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *SQLRepository) UpdateAmounts(ctx context.Context, asset *Asset) error {
	_, err := r.q.UpdateWalletAssetAmounts(ctx, db.UpdateWalletAssetAmountsParams{
		ID:          asset.ID,
		TotalAmount: asset.TotalAmount.StringFixed(2),
		HoldAmount:  asset.HoldAmount.StringFixed(2),
		UpdatedAt:   asset.UpdatedAt,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAssetNotFound
	}
	return err
}

func fromRow(row db.WalletAsset) (*Asset, error) {
	total, err := decimal.NewFromString(row.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("parse total_amount %q: %w", row.TotalAmount, err)
	}
	hold, err := decimal.NewFromString(row.HoldAmount)
	if err != nil {
		return nil, fmt.Errorf("parse hold_amount %q: %w", row.HoldAmount, err)
	}
	return &Asset{
		ID:          row.ID,
		UserID:      row.UserID,
		Currency:    row.Currency,
		TotalAmount: total,
		HoldAmount:  hold,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

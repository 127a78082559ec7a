package wallet

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is the per-(user, currency) running balance. One row per pair,
// created lazily on first mutation, never deleted. TotalAmount must stay
// non-negative; handlers enforce that before commit.
type Asset struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"user_id"`
	Currency    string          `json:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	HoldAmount  decimal.Decimal `json:"hold_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AggregateType names the wallet aggregate in handler declarations and
// audit rows.
const AggregateType = "wallet_asset"

// LockKey is the advisory-lock key serializing mutations of one pair.
func LockKey(userID int64, currency string) string {
	return fmt.Sprintf("%d%s", userID, currency)
}

// Round2 normalizes a ledger amount to the persisted precision: two
// fractional digits, half rounded up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

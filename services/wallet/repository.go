package wallet

import "context"

// Reader is the read side used outside any unit of work, e.g. by the
// provisioning pre-hook's existence check.
type Reader interface {
	GetByUserAndCurrency(ctx context.Context, userID int64, currency string) (*Asset, error)
}

type Repository interface {
	Reader
	// Create inserts a new asset row; a second insert for the same
	// (user, currency) pair returns ErrAssetExists.
	Create(ctx context.Context, asset *Asset) error
	UpdateAmounts(ctx context.Context, asset *Asset) error
}

// TxStores is the slice of the transaction-scoped store bundle the wallet
// handlers care about. The concrete bundle in services/ledger implements it.
type TxStores interface {
	WalletAssets() Repository
}

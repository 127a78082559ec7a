package ledger

import (
	"github.com/CrestPay/CrestPay-Backend/services/audit"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
)

// Stores is the transaction-scoped bundle handed to handlers. It satisfies
// command.Tx plus the per-module TxStores slices the handlers assert.
type Stores struct {
	wallets      wallet.Repository
	transactions transaction.Repository
	audits       audit.Store
}

func NewStores(wallets wallet.Repository, transactions transaction.Repository, audits audit.Store) *Stores {
	return &Stores{
		wallets:      wallets,
		transactions: transactions,
		audits:       audits,
	}
}

func (s *Stores) WalletAssets() wallet.Repository {
	return s.wallets
}

func (s *Stores) Transactions() transaction.Repository {
	return s.transactions
}

func (s *Stores) Audit() audit.Store {
	return s.audits
}

package ledger

import (
	"context"
	"sync"

	"github.com/CrestPay/CrestPay-Backend/services/audit"
	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
)

// MemoryUnitOfWork is the in-memory stand-in for tests and local runs. One
// coarse mutex serializes units of work; rollback restores the pre-call
// snapshot of every store, which gives the same all-or-nothing behavior the
// database transaction provides.
type MemoryUnitOfWork struct {
	mu           sync.Mutex
	wallets      *wallet.MemoryRepository
	transactions *transaction.MemoryRepository
	audits       *audit.MemoryStore
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		wallets:      wallet.NewMemoryRepository(),
		transactions: transaction.NewMemoryRepository(),
		audits:       audit.NewMemoryStore(),
	}
}

func (u *MemoryUnitOfWork) Run(ctx context.Context, fn func(tx command.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	walletsBackup := u.wallets.Clone()
	transactionsBackup := u.transactions.Clone()
	auditsBackup := u.audits.Clone()

	err := fn(NewStores(u.wallets, u.transactions, u.audits))
	if err != nil {
		u.wallets.Restore(walletsBackup)
		u.transactions.Restore(transactionsBackup)
		u.audits.Restore(auditsBackup)
	}
	return err
}

// Wallets exposes the canonical wallet store for out-of-transaction reads,
// e.g. the provisioning hook's existence check.
func (u *MemoryUnitOfWork) Wallets() *wallet.MemoryRepository {
	return u.wallets
}

func (u *MemoryUnitOfWork) Transactions() *transaction.MemoryRepository {
	return u.transactions
}

func (u *MemoryUnitOfWork) Audits() *audit.MemoryStore {
	return u.audits
}

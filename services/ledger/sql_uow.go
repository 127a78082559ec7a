package ledger

import (
	"context"

	db "github.com/CrestPay/CrestPay-Backend/db/sqlc"
	"github.com/CrestPay/CrestPay-Backend/services/audit"
	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
)

// SQLUnitOfWork opens one fresh database transaction per command. It never
// joins a caller transaction; isolation between a failing command and its
// trigger is the point.
type SQLUnitOfWork struct {
	store *db.Store
}

func NewSQLUnitOfWork(store *db.Store) *SQLUnitOfWork {
	return &SQLUnitOfWork{store: store}
}

func (u *SQLUnitOfWork) Run(ctx context.Context, fn func(tx command.Tx) error) error {
	return u.store.ExecTx(ctx, func(q *db.Queries) error {
		return fn(NewStores(
			wallet.NewSQLRepository(q),
			transaction.NewSQLRepository(q),
			audit.NewSQLStore(q),
		))
	})
}

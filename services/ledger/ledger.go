package ledger

import (
	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/lock"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
)

// Config carries everything the engine wiring needs. Bus may be nil when no
// downstream module listens (tests mostly).
type Config struct {
	UnitOfWork   command.UnitOfWork
	WalletReader wallet.Reader
	Locks        lock.Provider
	Bus          *events.Bus
	Refs         *transaction.ReferenceGenerator
	Logger       *logging.Logger
}

// NewEngine assembles the dispatch engine with the full closed handler set.
// Registration is validated here, at startup: a handler wired against the
// wrong command fails the build of the engine, not some later dispatch.
func NewEngine(cfg Config) (*command.Engine, error) {
	registry := command.NewRegistry()
	codec := command.NewCodec()

	registrations := []struct {
		prototype command.Command
		handler   command.Handler
		factory   func() command.Command
	}{
		{
			&wallet.CreateAssetCommand{},
			wallet.NewCreateAssetHandler(cfg.Logger),
			func() command.Command { return &wallet.CreateAssetCommand{} },
		},
		{
			&wallet.AddFundsCommand{},
			wallet.NewAddFundsHandler(cfg.Logger),
			func() command.Command { return &wallet.AddFundsCommand{} },
		},
		{
			&wallet.SubtractFundsCommand{},
			wallet.NewSubtractFundsHandler(cfg.Logger),
			func() command.Command { return &wallet.SubtractFundsCommand{} },
		},
		{
			&transaction.CreateNewTransactionCommand{},
			transaction.NewCreateNewTransactionHandler(cfg.Refs, cfg.Logger),
			func() command.Command { return &transaction.CreateNewTransactionCommand{} },
		},
		{
			&transaction.CreatePaymentTransactionCommand{},
			transaction.NewCreatePaymentTransactionHandler(cfg.Refs, cfg.Logger),
			func() command.Command { return &transaction.CreatePaymentTransactionCommand{} },
		},
		{
			&transaction.ConfirmPaymentTransactionCommand{},
			transaction.NewConfirmPaymentTransactionHandler(cfg.Logger),
			func() command.Command { return &transaction.ConfirmPaymentTransactionCommand{} },
		},
		{
			&transaction.SetPaymentTransactionErrorCommand{},
			transaction.NewSetPaymentTransactionErrorHandler(cfg.Logger),
			func() command.Command { return &transaction.SetPaymentTransactionErrorCommand{} },
		},
		{
			&transaction.UpdateTransactionStatusCommand{},
			transaction.NewUpdateTransactionStatusHandler(cfg.Logger),
			func() command.Command { return &transaction.UpdateTransactionStatusCommand{} },
		},
	}

	for _, reg := range registrations {
		if err := registry.Register(reg.prototype, reg.handler); err != nil {
			return nil, err
		}
		if err := codec.RegisterFactory(reg.prototype, reg.factory); err != nil {
			return nil, err
		}
	}

	engine := command.NewEngine(registry, codec, cfg.UnitOfWork, cfg.Logger)
	if cfg.Bus != nil {
		engine.SetPublisher(cfg.Bus)
	}

	// Pre-hook order matters: provisioning first, so the lock is acquired
	// after the auto-create step; the lock hook doubles as the finally-hook
	// that releases unconditionally.
	engine.AddPreHook(wallet.NewProvisionHook(engine, cfg.WalletReader, cfg.Logger))
	lockHook := wallet.NewLockHook(cfg.Locks, cfg.Logger)
	engine.AddPreHook(lockHook)
	engine.AddFinallyHook(lockHook)

	return engine, nil
}

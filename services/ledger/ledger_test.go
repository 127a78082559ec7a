package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/ledger"
	"github.com/CrestPay/CrestPay-Backend/services/lock"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
	"github.com/CrestPay/CrestPay-Backend/services/payment"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
)

type fixture struct {
	engine *command.Engine
	uow    *ledger.MemoryUnitOfWork
	bus    *events.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logging.NewTestLogger()
	uow := ledger.NewMemoryUnitOfWork()
	bus := events.NewBus(logger)

	refs, err := transaction.NewReferenceGenerator("test-salt")
	require.NoError(t, err)

	engine, err := ledger.NewEngine(ledger.Config{
		UnitOfWork:   uow,
		WalletReader: uow.Wallets(),
		Locks:        lock.NewCacheLock(time.Second),
		Bus:          bus,
		Refs:         refs,
		Logger:       logger,
	})
	require.NoError(t, err)

	return &fixture{engine: engine, uow: uow, bus: bus}
}

func (f *fixture) asset(t *testing.T, userID int64, currency string) *wallet.Asset {
	t.Helper()
	asset, err := f.uow.Wallets().GetByUserAndCurrency(context.Background(), userID, currency)
	require.NoError(t, err)
	return asset
}

func (f *fixture) mustHandle(t *testing.T, cmd command.Command) *command.Result {
	t.Helper()
	res, err := f.engine.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return res
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestExplicitCreateAddSubtract(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustHandle(t, &wallet.CreateAssetCommand{UserID: 1, Currency: "NGN", Amount: decimal.Zero})
	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 1, Currency: "NGN", Amount: dec("15")})
	f.mustHandle(t, &wallet.SubtractFundsCommand{UserID: 1, Currency: "NGN", Amount: dec("15")})

	asset := f.asset(t, 1, "NGN")
	require.True(t, asset.TotalAmount.Equal(decimal.Zero), "final total = %s", asset.TotalAmount)
	require.Equal(t, res.AggregateID, asset.ID.String())

	recorded, err := f.uow.Audits().ListByAggregate(ctx, asset.ID.String())
	require.NoError(t, err)
	require.Len(t, recorded, 3)
	require.Equal(t, wallet.CommandCreateAsset, recorded[0].CommandName)
	require.Equal(t, wallet.CommandAddFunds, recorded[1].CommandName)
	require.Equal(t, wallet.CommandSubtractFunds, recorded[2].CommandName)

	// Ledger snapshots line up: each event's after equals the next before.
	require.True(t, recorded[1].TotalBefore.Decimal.Equal(decimal.Zero))
	require.True(t, recorded[1].TotalAfter.Decimal.Equal(dec("15")))
	require.True(t, recorded[2].TotalBefore.Decimal.Equal(dec("15")))
	require.True(t, recorded[2].TotalAfter.Decimal.Equal(decimal.Zero))
}

func TestLazyCreationAndRounding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No explicit create anywhere: the first touch per pair materializes
	// the asset through the provisioning pre-hook.
	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 7, Currency: "NGN", Amount: dec("15")})
	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 7, Currency: "NGN", Amount: dec("33.377")})
	f.mustHandle(t, &wallet.SubtractFundsCommand{UserID: 7, Currency: "NGN", Amount: dec("4")})
	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 7, Currency: "NGN", Amount: dec("2345.5")})
	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 7, Currency: "USD", Amount: dec("1234.8764")})

	ngn := f.asset(t, 7, "NGN")
	usd := f.asset(t, 7, "USD")
	require.True(t, ngn.TotalAmount.Equal(dec("2389.88")), "NGN total = %s", ngn.TotalAmount)
	require.True(t, usd.TotalAmount.Equal(dec("1234.88")), "USD total = %s", usd.TotalAmount)

	ngnEvents, err := f.uow.Audits().ListByAggregate(ctx, ngn.ID.String())
	require.NoError(t, err)
	require.Len(t, ngnEvents, 5, "1 implicit create + 4 mutations")
	require.Equal(t, wallet.CommandCreateAsset, ngnEvents[0].CommandName)

	usdEvents, err := f.uow.Audits().ListByAggregate(ctx, usd.ID.String())
	require.NoError(t, err)
	require.Len(t, usdEvents, 2, "1 implicit create + 1 mutation")
}

func TestSubtractNeverGoesNegative(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustHandle(t, &wallet.AddFundsCommand{UserID: 3, Currency: "EUR", Amount: dec("10")})

	_, err := f.engine.Handle(ctx, &wallet.SubtractFundsCommand{UserID: 3, Currency: "EUR", Amount: dec("10.01")})
	require.Error(t, err)
	require.True(t, command.IsCannotApply(err))
	require.Contains(t, err.Error(), "not enough money")

	asset := f.asset(t, 3, "EUR")
	require.True(t, asset.TotalAmount.Equal(dec("10")), "refused subtract must not touch the balance")

	recorded, err := f.uow.Audits().ListByAggregate(ctx, asset.ID.String())
	require.NoError(t, err)
	require.Len(t, recorded, 2, "no audit event for the refused subtract")
}

func TestFirstTouchSubtractOnEmptyAsset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The pre-hook creates the zero-balance asset, then the subtract itself
	// is refused: create survives in its own unit of work.
	_, err := f.engine.Handle(ctx, &wallet.SubtractFundsCommand{UserID: 9, Currency: "GBP", Amount: dec("5")})
	require.True(t, command.IsCannotApply(err))

	asset := f.asset(t, 9, "GBP")
	require.True(t, asset.TotalAmount.Equal(decimal.Zero))

	recorded, err := f.uow.Audits().ListByAggregate(ctx, asset.ID.String())
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	require.Equal(t, wallet.CommandCreateAsset, recorded[0].CommandName)
}

func TestCreateTransactionRoundsAndAudits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	original := &transaction.CreateNewTransactionCommand{
		UserID:         5,
		Type:           transaction.TypePayment,
		DebitTotal:     dec("123.319"),
		DebitCurrency:  "NGN",
		CreditTotal:    dec("32.123"),
		CreditCurrency: "NGN",
	}

	res := f.mustHandle(t, original)
	txn := res.Value.(*transaction.Transaction)

	require.Equal(t, transaction.StatusPending, txn.Status)
	require.Equal(t, transaction.SubStatusDone, txn.SubStatus, "default substatus")
	require.True(t, txn.DebitTotal.Equal(dec("123.32")), "debit rounded half-up, got %s", txn.DebitTotal)
	require.True(t, txn.CreditTotal.Equal(dec("32.12")), "credit rounded half-up, got %s", txn.CreditTotal)
	require.NotEmpty(t, txn.DebitReferenceID)
	require.NotEmpty(t, txn.CreditReferenceID)

	recorded, err := f.uow.Audits().ListByAggregate(ctx, txn.ID.String())
	require.NoError(t, err)
	require.Len(t, recorded, 1)

	// The stored command decodes back into a deep-equal copy of the original.
	codec := command.NewCodec()
	require.NoError(t, codec.RegisterFactory(&transaction.CreateNewTransactionCommand{},
		func() command.Command { return &transaction.CreateNewTransactionCommand{} }))
	decoded, err := codec.Decode(recorded[0].Command)
	require.NoError(t, err)
	replayed := decoded.(*transaction.CreateNewTransactionCommand)
	require.Equal(t, original.UserID, replayed.UserID)
	require.Equal(t, original.Type, replayed.Type)
	require.True(t, original.DebitTotal.Equal(replayed.DebitTotal))
	require.True(t, original.CreditTotal.Equal(replayed.CreditTotal))
}

func TestPaymentEventsDriveTransactionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adapter := payment.NewAdapter(f.engine, logging.NewTestLogger())
	adapter.Attach(f.bus)

	// Recurring payment already confirmed upstream: completed immediately.
	require.NoError(t, f.bus.Publish(ctx, events.Event{
		Name: payment.EventCreated,
		Payload: payment.CreatedEvent{
			PaymentID:   "pay-sub-1",
			UserID:      11,
			PaymentType: transaction.PaymentTypeRecurring,
			Status:      payment.StatusConfirmed,
			Amount:      dec("9.99"),
			Currency:    "USD",
		},
	}))
	f.bus.Drain()

	sub, err := f.uow.Transactions().GetByPaymentID(ctx, "pay-sub-1")
	require.NoError(t, err)
	require.Equal(t, transaction.TypeSubscriptionPayment, sub.Type)
	require.Equal(t, transaction.StatusCompleted, sub.Status)
	require.Equal(t, transaction.SubStatusDone, sub.SubStatus)

	// One-time payment lands pending, then the confirmation event refines it.
	require.NoError(t, f.bus.Publish(ctx, events.Event{
		Name: payment.EventCreated,
		Payload: payment.CreatedEvent{
			PaymentID:   "pay-once-1",
			UserID:      11,
			PaymentType: transaction.PaymentTypeOneTime,
			Status:      "created",
			Amount:      dec("45"),
			Currency:    "USD",
		},
	}))
	f.bus.Drain()

	once, err := f.uow.Transactions().GetByPaymentID(ctx, "pay-once-1")
	require.NoError(t, err)
	require.Equal(t, transaction.TypePayment, once.Type)
	require.Equal(t, transaction.StatusPending, once.Status)
	require.Equal(t, transaction.SubStatusAwaitsPaymentGatewayUpdate, once.SubStatus)

	require.NoError(t, f.bus.Publish(ctx, events.Event{
		Name:    payment.EventStatusUpdated,
		Payload: payment.StatusUpdatedEvent{PaymentID: "pay-once-1", Status: payment.StatusConfirmed},
	}))
	f.bus.Drain()

	once, err = f.uow.Transactions().GetByPaymentID(ctx, "pay-once-1")
	require.NoError(t, err)
	require.Equal(t, transaction.StatusPending, once.Status)
	require.Equal(t, transaction.SubStatusPaymentReceived, once.SubStatus)
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustHandle(t, &transaction.CreatePaymentTransactionCommand{
		UserID:        2,
		PaymentID:     "pay-err-1",
		PaymentType:   transaction.PaymentTypeOneTime,
		PaymentStatus: "created",
		Amount:        dec("20"),
		Currency:      "NGN",
	})
	f.mustHandle(t, &transaction.SetPaymentTransactionErrorCommand{PaymentID: "pay-err-1"})

	txn, err := f.uow.Transactions().GetByPaymentID(ctx, "pay-err-1")
	require.NoError(t, err)
	require.Equal(t, transaction.StatusError, txn.Status)
	require.Equal(t, transaction.SubStatusPaymentError, txn.SubStatus)

	// Neither a confirm nor a generic update may leave ERROR.
	_, err = f.engine.Handle(ctx, &transaction.ConfirmPaymentTransactionCommand{PaymentID: "pay-err-1"})
	require.True(t, command.IsCannotApply(err))

	_, err = f.engine.Handle(ctx, &transaction.UpdateTransactionStatusCommand{
		TransactionID: txn.ID,
		Status:        transaction.StatusCompleted,
		SubStatus:     transaction.SubStatusDone,
	})
	require.True(t, command.IsCannotApply(err))

	txn, err = f.uow.Transactions().GetByPaymentID(ctx, "pay-err-1")
	require.NoError(t, err)
	require.Equal(t, transaction.StatusError, txn.Status)
}

func TestDuplicatePaymentTransactionRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cmd := &transaction.CreatePaymentTransactionCommand{
		UserID:        4,
		PaymentID:     "pay-dup-1",
		PaymentType:   transaction.PaymentTypeOneTime,
		PaymentStatus: "created",
		Amount:        dec("10"),
		Currency:      "NGN",
	}
	f.mustHandle(t, cmd)

	_, err := f.engine.Handle(ctx, cmd)
	require.True(t, command.IsCannotApply(err))
	require.Contains(t, err.Error(), "already has a transaction")
}

package payment

import (
	"context"
	"fmt"

	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
)

// Adapter translates payment events into ledger commands. It runs on the bus
// dispatch goroutines, asynchronously relative to the publisher; retry
// policy, if any wanted, belongs here and not in the engine.
type Adapter struct {
	engine command.Dispatcher
	logger *logging.Logger
}

func NewAdapter(engine command.Dispatcher, logger *logging.Logger) *Adapter {
	return &Adapter{
		engine: engine,
		logger: logger,
	}
}

func (a *Adapter) Attach(bus *events.Bus) {
	bus.Subscribe(EventCreated, a.onPaymentCreated)
	bus.Subscribe(EventStatusUpdated, a.onStatusUpdated)
}

func (a *Adapter) onPaymentCreated(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(CreatedEvent)
	if !ok {
		a.logger.Error(fmt.Sprintf("unexpected payload %T on %s", event.Payload, event.Name))
		return
	}

	a.dispatch(ctx, &transaction.CreatePaymentTransactionCommand{
		UserID:        payload.UserID,
		PaymentID:     payload.PaymentID,
		PaymentType:   payload.PaymentType,
		PaymentStatus: payload.Status,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
	})
}

func (a *Adapter) onStatusUpdated(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(StatusUpdatedEvent)
	if !ok {
		a.logger.Error(fmt.Sprintf("unexpected payload %T on %s", event.Payload, event.Name))
		return
	}

	switch payload.Status {
	case StatusConfirmed:
		a.dispatch(ctx, &transaction.ConfirmPaymentTransactionCommand{PaymentID: payload.PaymentID})
	case StatusError:
		a.dispatch(ctx, &transaction.SetPaymentTransactionErrorCommand{PaymentID: payload.PaymentID})
	default:
		a.logger.Debug(fmt.Sprintf("ignoring payment status %q for %s", payload.Status, payload.PaymentID))
	}
}

func (a *Adapter) dispatch(ctx context.Context, cmd command.Command) {
	if _, err := a.engine.Handle(ctx, cmd); err != nil {
		if command.IsCannotApply(err) {
			a.logger.Debug(fmt.Sprintf("payment event not applied: %v", err))
			return
		}
		a.logger.Error(fmt.Sprintf("payment event dispatch failed: %v", err))
	}
}

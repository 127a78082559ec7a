package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

// CreateNewTransactionHandler builds a PENDING transaction from caller data.
// No wallet lock applies here: nothing shared is contended at creation.
type CreateNewTransactionHandler struct {
	refs   *ReferenceGenerator
	logger *logging.Logger
}

func NewCreateNewTransactionHandler(refs *ReferenceGenerator, logger *logging.Logger) *CreateNewTransactionHandler {
	return &CreateNewTransactionHandler{refs: refs, logger: logger}
}

func (h *CreateNewTransactionHandler) CommandName() string   { return CommandCreate }
func (h *CreateNewTransactionHandler) AggregateType() string { return AggregateType }

func (h *CreateNewTransactionHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*CreateNewTransactionCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, ErrNoStoreAccess
	}

	subStatus := c.SubStatus
	if subStatus == "" {
		subStatus = SubStatusDone
	}

	now := time.Now()
	txn := &Transaction{
		ID:                uuid.New(),
		UserID:            c.UserID,
		PaymentID:         c.PaymentID,
		Type:              c.Type,
		Status:            StatusPending,
		SubStatus:         subStatus,
		DebitTotal:        c.DebitTotal.Round(2),
		DebitType:         c.DebitType,
		DebitSubtype:      c.DebitSubtype,
		DebitCurrency:     c.DebitCurrency,
		CreditTotal:       c.CreditTotal.Round(2),
		CreditType:        c.CreditType,
		CreditSubtype:     c.CreditSubtype,
		CreditCurrency:    c.CreditCurrency,
		DebitReferenceID:  h.refs.Next(),
		CreditReferenceID: h.refs.Next(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := stores.Transactions().Create(ctx, txn); err != nil {
		return nil, err
	}

	vars[command.VarResourceName] = c.DebitCurrency
	vars[command.VarTotalAmount] = txn.DebitTotal

	return &command.Outcome{
		AggregateID: txn.ID.String(),
		Aggregate:   txn,
		Event:       &events.Event{Name: EventCreated, Payload: *txn},
	}, nil
}

// CreatePaymentTransactionHandler records a payment the upstream module
// reported with no linked transaction yet, deriving type and status from the
// payment attributes.
type CreatePaymentTransactionHandler struct {
	refs   *ReferenceGenerator
	logger *logging.Logger
}

func NewCreatePaymentTransactionHandler(refs *ReferenceGenerator, logger *logging.Logger) *CreatePaymentTransactionHandler {
	return &CreatePaymentTransactionHandler{refs: refs, logger: logger}
}

func (h *CreatePaymentTransactionHandler) CommandName() string   { return CommandCreatePayment }
func (h *CreatePaymentTransactionHandler) AggregateType() string { return AggregateType }

func (h *CreatePaymentTransactionHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*CreatePaymentTransactionCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, ErrNoStoreAccess
	}

	if _, err := stores.Transactions().GetByPaymentID(ctx, c.PaymentID); err == nil {
		return nil, command.CannotApply(cmd, "payment %s already has a transaction", c.PaymentID)
	} else if !errors.Is(err, ErrTransactionNotFound) {
		return nil, err
	}

	txnType := TypePayment
	if c.PaymentType == PaymentTypeRecurring {
		txnType = TypeSubscriptionPayment
	}

	status := StatusPending
	subStatus := SubStatusAwaitsPaymentGatewayUpdate
	if c.PaymentStatus == PaymentStatusConfirmed {
		status = StatusCompleted
		subStatus = SubStatusDone
	}

	now := time.Now()
	txn := &Transaction{
		ID:                uuid.New(),
		UserID:            c.UserID,
		PaymentID:         c.PaymentID,
		Type:              txnType,
		Status:            status,
		SubStatus:         subStatus,
		CreditTotal:       c.Amount.Round(2),
		CreditCurrency:    c.Currency,
		DebitReferenceID:  h.refs.Next(),
		CreditReferenceID: h.refs.Next(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := stores.Transactions().Create(ctx, txn); err != nil {
		return nil, err
	}

	vars[command.VarResourceName] = c.Currency
	vars[command.VarTotalAmount] = txn.CreditTotal

	return &command.Outcome{
		AggregateID: txn.ID.String(),
		Aggregate:   txn,
		Event:       &events.Event{Name: EventCreated, Payload: *txn},
	}, nil
}

// ConfirmPaymentTransactionHandler reacts to a payment-status-confirmed
// event. Subscription transactions finish immediately; everything else still
// has internal steps ahead and only refines the substatus.
type ConfirmPaymentTransactionHandler struct {
	logger *logging.Logger
}

func NewConfirmPaymentTransactionHandler(logger *logging.Logger) *ConfirmPaymentTransactionHandler {
	return &ConfirmPaymentTransactionHandler{logger: logger}
}

func (h *ConfirmPaymentTransactionHandler) CommandName() string   { return CommandConfirm }
func (h *ConfirmPaymentTransactionHandler) AggregateType() string { return AggregateType }

func (h *ConfirmPaymentTransactionHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*ConfirmPaymentTransactionCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}

	txn, stores, err := loadByPayment(ctx, tx, cmd, c.PaymentID)
	if err != nil {
		return nil, err
	}

	if txn.Type == TypeSubscriptionPayment {
		txn.Status = StatusCompleted
		txn.SubStatus = SubStatusDone
	} else {
		txn.Status = StatusPending
		txn.SubStatus = SubStatusPaymentReceived
	}
	txn.UpdatedAt = time.Now()

	if err := stores.Transactions().UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	var event *events.Event
	if txn.Status == StatusCompleted {
		event = &events.Event{Name: EventCompleted, Payload: *txn}
	}

	return &command.Outcome{
		AggregateID: txn.ID.String(),
		Aggregate:   txn,
		Event:       event,
	}, nil
}

// SetPaymentTransactionErrorHandler reacts to a payment-status-error event.
type SetPaymentTransactionErrorHandler struct {
	logger *logging.Logger
}

func NewSetPaymentTransactionErrorHandler(logger *logging.Logger) *SetPaymentTransactionErrorHandler {
	return &SetPaymentTransactionErrorHandler{logger: logger}
}

func (h *SetPaymentTransactionErrorHandler) CommandName() string   { return CommandSetError }
func (h *SetPaymentTransactionErrorHandler) AggregateType() string { return AggregateType }

func (h *SetPaymentTransactionErrorHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*SetPaymentTransactionErrorCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}

	txn, stores, err := loadByPayment(ctx, tx, cmd, c.PaymentID)
	if err != nil {
		return nil, err
	}

	txn.Status = StatusError
	txn.SubStatus = SubStatusPaymentError
	txn.UpdatedAt = time.Now()

	if err := stores.Transactions().UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	return &command.Outcome{
		AggregateID: txn.ID.String(),
		Aggregate:   txn,
		Event:       &events.Event{Name: EventFailed, Payload: *txn},
	}, nil
}

// UpdateTransactionStatusHandler is the generic status setter other flows
// use. Terminal states still hold.
type UpdateTransactionStatusHandler struct {
	logger *logging.Logger
}

func NewUpdateTransactionStatusHandler(logger *logging.Logger) *UpdateTransactionStatusHandler {
	return &UpdateTransactionStatusHandler{logger: logger}
}

func (h *UpdateTransactionStatusHandler) CommandName() string   { return CommandUpdateStatus }
func (h *UpdateTransactionStatusHandler) AggregateType() string { return AggregateType }

func (h *UpdateTransactionStatusHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*UpdateTransactionStatusCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, ErrNoStoreAccess
	}

	if !c.Status.Valid() {
		return nil, command.CannotApply(cmd, "unknown status %q", c.Status)
	}

	txn, err := stores.Transactions().GetByID(ctx, c.TransactionID)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return nil, command.CannotApply(cmd, "unknown transaction %s", c.TransactionID)
		}
		return nil, err
	}

	if txn.Status.Terminal() {
		return nil, command.CannotApply(cmd, "transaction %s already finalized as %s", txn.ID, txn.Status)
	}

	txn.Status = c.Status
	txn.SubStatus = c.SubStatus
	txn.UpdatedAt = time.Now()

	if err := stores.Transactions().UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	var event *events.Event
	if txn.Status == StatusCompleted {
		event = &events.Event{Name: EventCompleted, Payload: *txn}
	}

	return &command.Outcome{
		AggregateID: txn.ID.String(),
		Aggregate:   txn,
		Event:       event,
	}, nil
}

func loadByPayment(ctx context.Context, tx command.Tx, cmd command.Command, paymentID string) (*Transaction, TxStores, error) {
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, nil, ErrNoStoreAccess
	}

	txn, err := stores.Transactions().GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return nil, nil, command.CannotApply(cmd, "no transaction linked to payment %s", paymentID)
		}
		return nil, nil, err
	}

	if txn.Status.Terminal() {
		return nil, nil, command.CannotApply(cmd, "transaction %s already finalized as %s", txn.ID, txn.Status)
	}

	return txn, stores, nil
}

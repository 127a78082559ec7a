package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

// CreateAssetHandler unconditionally creates a new asset row for the pair.
type CreateAssetHandler struct {
	logger *logging.Logger
}

func NewCreateAssetHandler(logger *logging.Logger) *CreateAssetHandler {
	return &CreateAssetHandler{logger: logger}
}

func (h *CreateAssetHandler) CommandName() string   { return CommandCreateAsset }
func (h *CreateAssetHandler) AggregateType() string { return AggregateType }

func (h *CreateAssetHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*CreateAssetCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, ErrNoStoreAccess
	}

	amount := Round2(c.Amount)
	if amount.IsNegative() {
		return nil, command.CannotApply(cmd, "%v", ErrNegativeAmount)
	}

	now := time.Now()
	asset := &Asset{
		ID:          uuid.New(),
		UserID:      c.UserID,
		Currency:    c.Currency,
		TotalAmount: amount,
		HoldAmount:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := stores.WalletAssets().Create(ctx, asset); err != nil {
		if errors.Is(err, ErrAssetExists) {
			return nil, command.CannotApply(cmd, "wallet asset already exists for user %d in %s", c.UserID, c.Currency)
		}
		return nil, err
	}

	vars[command.VarResourceName] = c.Currency
	vars[command.VarTotalBefore] = decimal.Zero
	vars[command.VarTotalAmount] = amount
	vars[command.VarTotalAfter] = asset.TotalAmount

	return &command.Outcome{
		AggregateID: asset.ID.String(),
		Aggregate:   asset,
		Event:       &events.Event{Name: EventAssetCreated, Payload: *asset},
	}, nil
}

// AddFundsHandler credits an existing asset. The provisioning pre-hook
// guarantees the row exists by the time this runs.
type AddFundsHandler struct {
	logger *logging.Logger
}

func NewAddFundsHandler(logger *logging.Logger) *AddFundsHandler {
	return &AddFundsHandler{logger: logger}
}

func (h *AddFundsHandler) CommandName() string   { return CommandAddFunds }
func (h *AddFundsHandler) AggregateType() string { return AggregateType }

func (h *AddFundsHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*AddFundsCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}

	asset, amount, err := loadForMutation(ctx, tx, cmd, c.UserID, c.Currency, c.Amount)
	if err != nil {
		return nil, err
	}

	before := asset.TotalAmount
	asset.TotalAmount = before.Add(amount)
	asset.UpdatedAt = time.Now()

	if err := tx.(TxStores).WalletAssets().UpdateAmounts(ctx, asset); err != nil {
		return nil, err
	}

	recordLedgerVars(vars, c.Currency, before, amount, asset.TotalAmount)

	return &command.Outcome{
		AggregateID: asset.ID.String(),
		Aggregate:   asset,
		Event: &events.Event{Name: EventAssetCredited, Payload: BalanceChange{
			UserID:   c.UserID,
			Currency: c.Currency,
			Previous: before,
			Current:  asset.TotalAmount,
		}},
	}, nil
}

// SubtractFundsHandler debits an existing asset, refusing to take the
// balance below zero.
type SubtractFundsHandler struct {
	logger *logging.Logger
}

func NewSubtractFundsHandler(logger *logging.Logger) *SubtractFundsHandler {
	return &SubtractFundsHandler{logger: logger}
}

func (h *SubtractFundsHandler) CommandName() string   { return CommandSubtractFunds }
func (h *SubtractFundsHandler) AggregateType() string { return AggregateType }

func (h *SubtractFundsHandler) Handle(ctx context.Context, tx command.Tx, cmd command.Command, vars command.Vars) (*command.Outcome, error) {
	c, ok := cmd.(*SubtractFundsCommand)
	if !ok {
		return nil, command.CannotApply(cmd, "unexpected command type %T", cmd)
	}

	asset, amount, err := loadForMutation(ctx, tx, cmd, c.UserID, c.Currency, c.Amount)
	if err != nil {
		return nil, err
	}

	before := asset.TotalAmount
	if before.LessThan(amount) {
		return nil, command.CannotApply(cmd, "%v: have %s, need %s", ErrNotEnoughMoney, before, amount)
	}

	asset.TotalAmount = before.Sub(amount)
	asset.UpdatedAt = time.Now()

	if err := tx.(TxStores).WalletAssets().UpdateAmounts(ctx, asset); err != nil {
		return nil, err
	}

	recordLedgerVars(vars, c.Currency, before, amount, asset.TotalAmount)

	return &command.Outcome{
		AggregateID: asset.ID.String(),
		Aggregate:   asset,
		Event: &events.Event{Name: EventAssetDebited, Payload: BalanceChange{
			UserID:   c.UserID,
			Currency: c.Currency,
			Previous: before,
			Current:  asset.TotalAmount,
		}},
	}, nil
}

func loadForMutation(ctx context.Context, tx command.Tx, cmd command.Command, userID int64, currency string, rawAmount decimal.Decimal) (*Asset, decimal.Decimal, error) {
	stores, ok := tx.(TxStores)
	if !ok {
		return nil, decimal.Zero, ErrNoStoreAccess
	}

	amount := Round2(rawAmount)
	if amount.IsNegative() {
		return nil, decimal.Zero, command.CannotApply(cmd, "%v", ErrNegativeAmount)
	}

	asset, err := stores.WalletAssets().GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return nil, decimal.Zero, command.CannotApply(cmd, "unknown wallet asset for user %d in %s", userID, currency)
		}
		return nil, decimal.Zero, err
	}

	return asset, amount, nil
}

func recordLedgerVars(vars command.Vars, currency string, before, amount, after decimal.Decimal) {
	vars[command.VarResourceName] = currency
	vars[command.VarTotalBefore] = before
	vars[command.VarTotalAmount] = amount
	vars[command.VarTotalAfter] = after
}
